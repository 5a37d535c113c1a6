package dto

import (
	"strings"

	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	TransactionID string           `json:"transactionId"`
	Amount        *decimal.Decimal `json:"amount"`
}

func (r *PaymentRequest) Sanitize() {
	r.TransactionID = strings.TrimSpace(r.TransactionID)
}

// Validate returns one message per offending field, or nil when the request
// is well formed. Amount zero is accepted; a missing amount is not.
func (r *PaymentRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.TransactionID == "" {
		fields["transactionId"] = "transactionId is required"
	}
	switch {
	case r.Amount == nil:
		fields["amount"] = "amount is required"
	case r.Amount.IsNegative():
		fields["amount"] = "amount must be zero or positive"
	case r.Amount.Exponent() < -2:
		fields["amount"] = "amount must have at most two decimal places"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (r *PaymentRequest) ToEntity() *models.Payment {
	return &models.Payment{
		TransactionID: r.TransactionID,
		Amount:        *r.Amount,
		Status:        models.StatusPending,
	}
}

type PaymentUpdateRequest struct {
	Status string `json:"status"`
}

func (r *PaymentUpdateRequest) Sanitize() {
	r.Status = strings.ToUpper(strings.TrimSpace(r.Status))
}

func (r *PaymentUpdateRequest) Validate() map[string]string {
	fields := make(map[string]string)
	if r.Status == "" {
		fields["status"] = "status is required"
	} else if !models.PaymentStatus(r.Status).IsValid() {
		fields["status"] = "status must be one of PENDING, PAID, FAILED, FRAUD"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	TransactionID string               `json:"transactionId"`
	Amount        decimal.Decimal      `json:"amount"`
	Status        models.PaymentStatus `json:"status"`
}

func FromEntity(p *models.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		Status:        p.Status,
	}
}
