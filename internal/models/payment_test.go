package models_test

import (
	"encoding/json"
	"testing"

	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, models.StatusPending.IsValid())
	assert.True(t, models.StatusPaid.IsValid())
	assert.True(t, models.StatusFailed.IsValid())
	assert.True(t, models.StatusFraud.IsValid())
	assert.False(t, models.PaymentStatus("SHIPPED").IsValid())
	assert.False(t, models.PaymentStatus("").IsValid())
}

func TestPaymentStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    models.PaymentStatus
		to      models.PaymentStatus
		allowed bool
	}{
		{models.StatusPending, models.StatusPaid, true},
		{models.StatusPending, models.StatusFailed, true},
		{models.StatusPending, models.StatusFraud, true},
		{models.StatusPending, models.StatusPending, true},
		{models.StatusPaid, models.StatusFailed, false},
		{models.StatusPaid, models.StatusPaid, false},
		{models.StatusPaid, models.StatusPending, false},
		{models.StatusFailed, models.StatusPaid, false},
		{models.StatusFailed, models.StatusFailed, false},
		{models.StatusFraud, models.StatusPending, false},
		{models.StatusFraud, models.StatusFraud, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminal())
	assert.True(t, models.StatusPaid.IsTerminal())
	assert.True(t, models.StatusFailed.IsTerminal())
	assert.True(t, models.StatusFraud.IsTerminal())
}

func TestPayment_JSONProjection(t *testing.T) {
	payment := models.Payment{
		ID:            "11111111-2222-3333-4444-555555555555",
		TransactionID: "txn_123",
		Amount:        decimal.RequireFromString("100.50"),
		Status:        models.StatusPending,
		Version:       3,
	}

	data, err := json.Marshal(payment)
	assert.NoError(t, err)

	// amount must serialize as a plain number and internal fields must stay
	// off the wire
	assert.JSONEq(t, `{
		"id": "11111111-2222-3333-4444-555555555555",
		"transactionId": "txn_123",
		"amount": 100.50,
		"status": "PENDING"
	}`, string(data))
}

func TestNewPaymentEvent(t *testing.T) {
	payment := models.Payment{
		ID:            "payment-123",
		TransactionID: "txn_123",
		Amount:        decimal.RequireFromString("10.00"),
		Status:        models.StatusPaid,
	}

	event := models.NewPaymentEvent(models.EventUpdated, payment)

	assert.Equal(t, models.EventUpdated, event.Type)
	assert.Equal(t, payment.ID, event.Payment.ID)
	assert.Equal(t, models.StatusPaid, event.Payment.Status)
	assert.False(t, event.Timestamp.IsZero())
	assert.Equal(t, "UTC", event.Timestamp.Location().String())
}
