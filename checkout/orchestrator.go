package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/franzhentze92/botanic-care-backend/models"
	"github.com/franzhentze92/botanic-care-backend/pricing"
)

// Cart is the slice of the cart store the orchestrator needs.
type Cart interface {
	State() models.CartState
	ItemCount() int
	ClearCart()
}

// AddressService persists shipping addresses.
type AddressService interface {
	CreateAddress(ctx context.Context, address models.Address) (string, error)
}

// PaymentMethodService persists payment method selections.
type PaymentMethodService interface {
	CreatePaymentMethod(ctx context.Context, method models.PaymentMethod) (string, error)
}

// OrderRepository persists orders and their line items. Items are written
// individually after the order, matching the sequential write pattern whose
// failure modes checkout has to surface.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (string, error)
	CreateOrderItem(ctx context.Context, orderID string, item models.OrderItem) error
}

// FormulationService moves custom formulations through their lifecycle.
type FormulationService interface {
	UpdateStatus(ctx context.Context, id string, status models.FormulationStatus) error
}

// Notifier tells the customer their order went through. Notification
// failures never fail a completed checkout; they are only logged.
type Notifier interface {
	OrderPlaced(ctx context.Context, email, name string, result Result) error
}

// User is the authenticated customer submitting the checkout.
type User struct {
	ID    string
	Email string
	Name  string
}

// ShippingDetails is the customer's shipping input. Every field except
// Country and Notes is required.
type ShippingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipcode"`
	Country   string `json:"country"`
}

// Request is one checkout submission.
type Request struct {
	Shipping       ShippingDetails    `json:"shipping"`
	PaymentMethod  models.PaymentType `json:"payment_method"`
	PaymentDetails map[string]string  `json:"payment_details,omitempty"`
	Notes          string             `json:"notes,omitempty"`
}

// Result is a successful checkout outcome.
type Result struct {
	OrderID      string  `json:"order_id"`
	OrderNumber  string  `json:"order_number"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"item_count"`
	RedirectPath string  `json:"redirect_path"`
}

// Orchestrator runs checkout sessions against the store's collaborators.
type Orchestrator struct {
	addresses    AddressService
	payments     PaymentMethodService
	orders       OrderRepository
	formulations FormulationService
	notifier     Notifier
	engine       *pricing.Engine
	logger       *zap.Logger
}

// NewOrchestrator wires an Orchestrator.
func NewOrchestrator(
	addresses AddressService,
	payments PaymentMethodService,
	orders OrderRepository,
	formulations FormulationService,
	notifier Notifier,
	engine *pricing.Engine,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		addresses:    addresses,
		payments:     payments,
		orders:       orders,
		formulations: formulations,
		notifier:     notifier,
		engine:       engine,
		logger:       logger,
	}
}

// Session is one customer's progress through checkout. It is not safe for
// concurrent use; one session belongs to one request flow.
type Session struct {
	orc   *Orchestrator
	cart  Cart
	user  User
	state State
}

// NewSession opens a checkout session. The cart must have items and the
// user must be signed in.
func (o *Orchestrator) NewSession(cart Cart, user User) (*Session, error) {
	if user.ID == "" {
		return nil, ErrNotAuthenticated
	}
	if cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}
	return &Session{orc: o, cart: cart, user: user, state: StateReviewing}, nil
}

// State returns the session's current stage.
func (s *Session) State() State { return s.state }

// Submit validates the request and runs the persistence pipeline. On any
// failure the cart is left untouched and records created by earlier steps
// stay in place; there is no compensation.
func (s *Session) Submit(ctx context.Context, req Request) (Result, error) {
	if s.state == StateSubmitting || s.state == StateSucceeded {
		return Result{}, ErrAlreadySubmitted
	}
	s.state = StateAwaitingSubmit

	if err := validate(req); err != nil {
		return Result{}, err
	}
	s.state = StateSubmitting

	res, err := s.orc.run(ctx, s.cart, s.user, req)
	if err != nil {
		s.state = StateFailed
		return Result{}, err
	}
	s.state = StateSucceeded
	return res, nil
}

var requiredShippingFields = []struct {
	name  string
	value func(ShippingDetails) string
}{
	{"first_name", func(d ShippingDetails) string { return d.FirstName }},
	{"last_name", func(d ShippingDetails) string { return d.LastName }},
	{"email", func(d ShippingDetails) string { return d.Email }},
	{"phone", func(d ShippingDetails) string { return d.Phone }},
	{"street", func(d ShippingDetails) string { return d.Street }},
	{"city", func(d ShippingDetails) string { return d.City }},
	{"state", func(d ShippingDetails) string { return d.State }},
	{"zipcode", func(d ShippingDetails) string { return d.ZipCode }},
}

func validate(req Request) error {
	for _, field := range requiredShippingFields {
		if strings.TrimSpace(field.value(req.Shipping)) == "" {
			return &ValidationError{Field: field.name}
		}
	}
	if !req.PaymentMethod.Valid() {
		return &ValidationError{Field: "payment_method"}
	}
	return nil
}

func (o *Orchestrator) run(ctx context.Context, cart Cart, user User, req Request) (Result, error) {
	addressID, err := o.addresses.CreateAddress(ctx, models.Address{
		UserID:  user.ID,
		Name:    req.Shipping.FirstName + " " + req.Shipping.LastName,
		Street:  req.Shipping.Street,
		City:    req.Shipping.City,
		State:   req.Shipping.State,
		ZipCode: req.Shipping.ZipCode,
		Country: req.Shipping.Country,
		Phone:   req.Shipping.Phone,
	})
	if err != nil {
		return Result{}, &CollaboratorError{Step: "address", Err: err}
	}

	paymentMethodID, err := o.payments.CreatePaymentMethod(ctx, models.PaymentMethod{
		UserID:  user.ID,
		Type:    req.PaymentMethod,
		Details: req.PaymentDetails,
	})
	if err != nil {
		o.logger.Warn("checkout aborted after address creation, record left in place",
			zap.String("address_id", addressID), zap.Error(err))
		return Result{}, &CollaboratorError{Step: "payment_method", Err: err}
	}

	items := cart.State().Items
	quote := o.engine.Quote(items)

	orderNumber := uuid.NewString()
	orderID, err := o.orders.CreateOrder(ctx, models.Order{
		UserID:            user.ID,
		Number:            orderNumber,
		Subtotal:          quote.Subtotal.InexactFloat64(),
		ShippingCost:      quote.ShippingCost.InexactFloat64(),
		Tax:               quote.Tax.InexactFloat64(),
		Total:             quote.Total.InexactFloat64(),
		ShippingAddressID: addressID,
		PaymentMethodID:   paymentMethodID,
		Notes:             req.Notes,
		Status:            "pending",
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		o.logger.Warn("checkout aborted after address and payment method creation, records left in place",
			zap.String("address_id", addressID),
			zap.String("payment_method_id", paymentMethodID),
			zap.Error(err))
		return Result{}, &CollaboratorError{Step: "order", Err: err}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, cartItem := range items {
		orderItem := BuildOrderItem(cartItem)
		if err := o.orders.CreateOrderItem(ctx, orderID, orderItem); err != nil {
			o.logger.Warn("checkout aborted after order creation, records left in place",
				zap.String("order_id", orderID), zap.Error(err))
			return Result{}, &CollaboratorError{Step: "order_items", Err: err}
		}
		orderItems = append(orderItems, orderItem)
	}

	for _, orderItem := range orderItems {
		if !orderItem.IsCustomFormulation {
			continue
		}
		if err := o.formulations.UpdateStatus(ctx, orderItem.CustomFormulationID, models.StatusOrdered); err != nil {
			o.logger.Warn("checkout aborted after order item creation, records left in place",
				zap.String("order_id", orderID),
				zap.String("formulation_id", orderItem.CustomFormulationID),
				zap.Error(err))
			return Result{}, &CollaboratorError{Step: "formulation_status", Err: err}
		}
	}

	itemCount := 0
	for _, item := range items {
		itemCount += item.Quantity
	}
	result := Result{
		OrderID:      orderID,
		OrderNumber:  orderNumber,
		Total:        quote.Total.InexactFloat64(),
		ItemCount:    itemCount,
		RedirectPath: fmt.Sprintf("/orders/%s/confirmation", orderID),
	}

	cart.ClearCart()

	if err := o.notifier.OrderPlaced(ctx, user.Email, user.Name, result); err != nil {
		o.logger.Warn("order confirmation notification failed",
			zap.String("order_id", orderID), zap.Error(err))
	}
	return result, nil
}

// BuildOrderItem snapshots one cart line into an order line. Products whose
// SKU carries the CUSTOM- prefix are recorded as custom formulations with a
// nil product id.
func BuildOrderItem(item models.CartItem) models.OrderItem {
	unit := decimal.NewFromFloat(item.Product.Price)
	total := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)

	orderItem := models.OrderItem{
		ProductName:     item.Product.Name,
		ProductImageURL: item.Product.Image,
		ProductSKU:      item.Product.SKU,
		Quantity:        item.Quantity,
		UnitPrice:       item.Product.Price,
		TotalPrice:      total.InexactFloat64(),
	}
	if item.Product.IsCustomFormulation() {
		orderItem.IsCustomFormulation = true
		orderItem.CustomFormulationID = item.Product.FormulationID()
		return orderItem
	}
	productID := item.Product.ID
	orderItem.ProductID = &productID
	return orderItem
}
