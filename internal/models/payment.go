package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts travel as plain JSON numbers (100.50), not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentStatus string

const (
	StatusPending PaymentStatus = "PENDING"
	StatusPaid    PaymentStatus = "PAID"
	StatusFailed  PaymentStatus = "FAILED"
	StatusFraud   PaymentStatus = "FRAUD"
)

// Payment is the durable record of an attempted money movement. The ID is
// allocated on first persistence and never changes; neither does the
// caller-supplied transaction id. Version backs optimistic locking on
// status updates.
type Payment struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid"`
	TransactionID string          `json:"transactionId" gorm:"column:transaction_id;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(19,2);not null"`
	Status        PaymentStatus   `json:"status" gorm:"type:varchar(20);not null"`
	Version       int64           `json:"-" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusFraud:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusFraud:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine allows moving from s to
// target. PENDING may move to any valid status, including itself (an
// idempotent re-write). Terminal states are absorbing.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return target.IsValid()
}

// FraudVerdict is the response of the outbound fraud-check endpoint. The
// message is informational only and never acted upon.
type FraudVerdict struct {
	Fraudulent bool   `json:"fraudulent"`
	Message    string `json:"message"`
}
