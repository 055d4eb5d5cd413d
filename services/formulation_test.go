package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franzhentze92/botanic-care-backend/models"
)

func TestStatusUpdateCheckForward(t *testing.T) {
	noop, err := statusUpdateCheck(models.StatusInCart, models.StatusOrdered)
	require.NoError(t, err)
	assert.False(t, noop)
}

// Re-ordering an already ordered formulation happens when a checkout fails
// partway and the shopper submits again; re-marking in_cart happens when an
// item is removed from the cart and added back. Both must succeed.
func TestStatusUpdateCheckSameStatusIsNoop(t *testing.T) {
	for _, status := range []models.FormulationStatus{
		models.StatusDraft,
		models.StatusInCart,
		models.StatusOrdered,
		models.StatusCompleted,
	} {
		noop, err := statusUpdateCheck(status, status)
		require.NoError(t, err, "status %q", status)
		assert.True(t, noop, "status %q", status)
	}
}

func TestStatusUpdateCheckRejectsBackward(t *testing.T) {
	_, err := statusUpdateCheck(models.StatusOrdered, models.StatusInCart)
	assert.Error(t, err)

	_, err = statusUpdateCheck(models.StatusCompleted, models.StatusDraft)
	assert.Error(t, err)
}

func TestStatusUpdateCheckRejectsUnknownStatus(t *testing.T) {
	_, err := statusUpdateCheck(models.StatusDraft, models.FormulationStatus("shipped"))
	assert.Error(t, err)
}
