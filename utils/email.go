// utils/email.go
package utils

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/franzhentze92/botanic-care-backend/checkout"
)

// EmailService sends customer notifications through SendGrid. It implements
// checkout.Notifier.
type EmailService struct {
	client *sendgrid.Client
	sender string
	logger *zap.Logger
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService(apiKey, sender string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, plainContent, htmlContent string) error {
	from := mail.NewEmail("Botanic Care", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainContent, htmlContent)

	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: sendgrid returned %d", response.StatusCode)
	}

	es.logger.Info("email sent", zap.String("to", toEmail), zap.String("subject", subject))
	return nil
}

// OrderPlaced sends the order confirmation with the total and item count.
func (es *EmailService) OrderPlaced(_ context.Context, email, name string, result checkout.Result) error {
	subject := "Order Confirmation - Botanic Care"
	plain := fmt.Sprintf(
		"Dear %s,\n\nThank you for your purchase! Your order %s (%d items) has been placed successfully.\n\nTotal: $%.2f\n\nThank you for shopping with us!\n",
		name, result.OrderNumber, result.ItemCount, result.Total,
	)
	html := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order <strong>%s</strong> (%d items) has been placed successfully.<br><br>Total: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		name, result.OrderNumber, result.ItemCount, result.Total,
	)
	return es.SendEmail(email, subject, plain, html)
}
