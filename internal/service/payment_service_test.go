package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fintechlabs/payment-service/internal/apperrors"
	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/fintechlabs/payment-service/internal/models/dto"
	"github.com/fintechlabs/payment-service/internal/repository/posgrest"
	"github.com/fintechlabs/payment-service/internal/service"
	"github.com/fintechlabs/payment-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*service.PaymentService, *mocks.MockPaymentRepo, *mocks.MockFraudChecker, *mocks.MockPublisher) {
	mockRepo := mocks.NewMockPaymentRepo(t)
	mockFraud := mocks.NewMockFraudChecker(t)
	mockPublisher := mocks.NewMockPublisher(t)
	return service.NewPaymentService(mockRepo, mockFraud, mockPublisher), mockRepo, mockFraud, mockPublisher
}

func amountOf(t *testing.T, value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	assert.NoError(t, err)
	return amount
}

func pendingPayment(id, transactionID, amount string) *models.Payment {
	return &models.Payment{
		ID:            id,
		TransactionID: transactionID,
		Amount:        decimal.RequireFromString(amount),
		Status:        models.StatusPending,
	}
}

func TestCreatePayment_Success(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	amount := amountOf(t, "100.50")
	req := &dto.PaymentRequest{
		TransactionID: "txn_123",
		Amount:        &amount,
	}

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Run(func(ctx context.Context, payment *models.Payment) {
			payment.ID = "11111111-2222-3333-4444-555555555555"
		}).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "11111111-2222-3333-4444-555555555555",
			mock.MatchedBy(func(event models.PaymentEvent) bool {
				return event.Type == models.EventCreated &&
					event.Payment.ID == "11111111-2222-3333-4444-555555555555" &&
					event.Payment.Status == models.StatusPending &&
					!event.Timestamp.IsZero()
			})).
		Return(nil).
		Once()

	response, err := paymentService.CreatePayment(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", response.ID)
	assert.Equal(t, "txn_123", response.TransactionID)
	assert.True(t, response.Amount.Equal(amountOf(t, "100.50")))
	assert.Equal(t, models.StatusPending, response.Status)
}

func TestCreatePayment_ZeroAmountAccepted(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	amount := decimal.Zero
	req := &dto.PaymentRequest{
		TransactionID: "txn_zero",
		Amount:        &amount,
	}

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Run(func(ctx context.Context, payment *models.Payment) {
			payment.ID = "payment-zero"
		}).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-zero", mock.Anything).
		Return(nil).
		Once()

	response, err := paymentService.CreatePayment(ctx, req)

	assert.NoError(t, err)
	assert.True(t, response.Amount.IsZero())
}

func TestCreatePayment_ValidationFailures(t *testing.T) {
	negative := decimal.RequireFromString("-1.00")
	tooPrecise := decimal.RequireFromString("10.123")
	valid := decimal.RequireFromString("10.00")

	tests := []struct {
		name  string
		req   *dto.PaymentRequest
		field string
	}{
		{"empty transaction id", &dto.PaymentRequest{TransactionID: "", Amount: &valid}, "transactionId"},
		{"blank transaction id", &dto.PaymentRequest{TransactionID: "   ", Amount: &valid}, "transactionId"},
		{"missing amount", &dto.PaymentRequest{TransactionID: "txn_1"}, "amount"},
		{"negative amount", &dto.PaymentRequest{TransactionID: "txn_1", Amount: &negative}, "amount"},
		{"too many decimal places", &dto.PaymentRequest{TransactionID: "txn_1", Amount: &tooPrecise}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentService, mockRepo, _, mockPublisher := newService(t)

			response, err := paymentService.CreatePayment(context.Background(), tt.req)

			assert.Nil(t, response)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

			var validationErr *apperrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)

			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreatePayment_RepoError(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	amount := amountOf(t, "50.00")
	req := &dto.PaymentRequest{
		TransactionID: "txn_123",
		Amount:        &amount,
	}

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Return(errors.New("database error")).
		Once()

	response, err := paymentService.CreatePayment(ctx, req)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePayment_PublisherError(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	amount := amountOf(t, "50.00")
	req := &dto.PaymentRequest{
		TransactionID: "txn_123",
		Amount:        &amount,
	}

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Run(func(ctx context.Context, payment *models.Payment) {
			payment.ID = "payment-123"
		}).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123", mock.Anything).
		Return(errors.New("kafka publish error")).
		Once()

	response, err := paymentService.CreatePayment(ctx, req)

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrBusUnavailable)
}

func TestGetPaymentByID_Success(t *testing.T) {
	paymentService, mockRepo, _, _ := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "123.56")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	response, err := paymentService.GetPaymentByID(ctx, "payment-123")

	assert.NoError(t, err)
	assert.Equal(t, "payment-123", response.ID)
	assert.Equal(t, "txn_123", response.TransactionID)
	assert.True(t, response.Amount.Equal(amountOf(t, "123.56")))
	assert.Equal(t, models.StatusPending, response.Status)
}

func TestGetPaymentByID_NotFound(t *testing.T) {
	paymentService, mockRepo, _, _ := newService(t)

	ctx := context.Background()

	mockRepo.EXPECT().
		FindByID(ctx, "missing-id").
		Return(nil, gorm.ErrRecordNotFound).
		Once()

	response, err := paymentService.GetPaymentByID(ctx, "missing-id")

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetAllPayments(t *testing.T) {
	paymentService, mockRepo, _, _ := newService(t)

	ctx := context.Background()
	payments := []models.Payment{
		*pendingPayment("payment-1", "txn_1", "100.00"),
		*pendingPayment("payment-2", "txn_2", "200.00"),
	}

	mockRepo.EXPECT().
		FindAll(ctx).
		Return(payments, nil).
		Once()

	responses, err := paymentService.GetAllPayments(ctx)

	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "txn_1", responses[0].TransactionID)
	assert.Equal(t, "txn_2", responses[1].TransactionID)
}

func TestUpdatePayment_ToPaid_FraudNegative(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "123.56")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockFraud.EXPECT().
		Check(ctx, existing).
		Return(&models.FraudVerdict{Fraudulent: false}, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.ID == "payment-123" && p.Status == models.StatusPaid
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123",
			mock.MatchedBy(func(event models.PaymentEvent) bool {
				return event.Type == models.EventUpdated &&
					event.Payment.Status == models.StatusPaid
			})).
		Return(nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "PAID"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPaid, response.Status)
}

func TestUpdatePayment_ToPaid_FraudPositive_OverridesToFraud(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-999", "txn_999", "9999.99")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-999").
		Return(existing, nil).
		Once()

	mockFraud.EXPECT().
		Check(ctx, existing).
		Return(&models.FraudVerdict{Fraudulent: true, Message: "amount looks suspicious"}, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusFraud
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-999",
			mock.MatchedBy(func(event models.PaymentEvent) bool {
				return event.Type == models.EventUpdated &&
					event.Payment.Status == models.StatusFraud
			})).
		Return(nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-999", &dto.PaymentUpdateRequest{Status: "PAID"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusFraud, response.Status)
}

func TestUpdatePayment_FraudCheckUnavailable(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "123.56")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockFraud.EXPECT().
		Check(ctx, existing).
		Return(nil, apperrors.ErrFraudCheckUnavailable).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "PAID"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrFraudCheckUnavailable)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePayment_ToFailed_NoFraudCheck(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "10.00")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusFailed
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123", mock.Anything).
		Return(nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "FAILED"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusFailed, response.Status)
	mockFraud.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestUpdatePayment_NotFound(t *testing.T) {
	paymentService, mockRepo, _, _ := newService(t)

	ctx := context.Background()

	mockRepo.EXPECT().
		FindByID(ctx, "missing-id").
		Return(nil, gorm.ErrRecordNotFound).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "missing-id", &dto.PaymentUpdateRequest{Status: "FAILED"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdatePayment_DirectFraudRejected(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	response, err := paymentService.UpdatePayment(context.Background(), "payment-123", &dto.PaymentUpdateRequest{Status: "FRAUD"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockFraud.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePayment_UnknownStatusRejected(t *testing.T) {
	paymentService, mockRepo, _, _ := newService(t)

	response, err := paymentService.UpdatePayment(context.Background(), "payment-123", &dto.PaymentUpdateRequest{Status: "SHIPPED"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdatePayment_TerminalStateIsAbsorbing(t *testing.T) {
	tests := []struct {
		name    string
		current models.PaymentStatus
		target  string
	}{
		{"paid to failed", models.StatusPaid, "FAILED"},
		{"paid to pending", models.StatusPaid, "PENDING"},
		{"failed to failed", models.StatusFailed, "FAILED"},
		{"fraud to pending", models.StatusFraud, "PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paymentService, mockRepo, _, mockPublisher := newService(t)

			ctx := context.Background()
			existing := pendingPayment("payment-123", "txn_123", "10.00")
			existing.Status = tt.current

			mockRepo.EXPECT().
				FindByID(ctx, "payment-123").
				Return(existing, nil).
				Once()

			response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: tt.target})

			assert.Nil(t, response)
			assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdatePayment_PendingToPending_Idempotent(t *testing.T) {
	paymentService, mockRepo, mockFraud, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "10.00")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusPending
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123",
			mock.MatchedBy(func(event models.PaymentEvent) bool {
				return event.Type == models.EventUpdated &&
					event.Payment.Status == models.StatusPending
			})).
		Return(nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "PENDING"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, response.Status)
	mockFraud.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestUpdatePayment_VersionConflict_RetriesOnce(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "10.00")
	reloaded := pendingPayment("payment-123", "txn_123", "10.00")
	reloaded.Version = 1

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Return(posgrest.ErrVersionConflict).
		Once()

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(reloaded, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.StatusFailed && p.Version == 1
		})).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123", mock.Anything).
		Return(nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "FAILED"})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusFailed, response.Status)
}

func TestUpdatePayment_VersionConflict_TerminalAfterReload(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "10.00")
	reloaded := pendingPayment("payment-123", "txn_123", "10.00")
	reloaded.Status = models.StatusPaid
	reloaded.Version = 1

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Return(posgrest.ErrVersionConflict).
		Once()

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(reloaded, nil).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "FAILED"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrIllegalTransition)
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePayment_PublisherError_AfterCommit(t *testing.T) {
	paymentService, mockRepo, _, mockPublisher := newService(t)

	ctx := context.Background()
	existing := pendingPayment("payment-123", "txn_123", "10.00")

	mockRepo.EXPECT().
		FindByID(ctx, "payment-123").
		Return(existing, nil).
		Once()

	mockRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*models.Payment")).
		Return(nil).
		Once()

	mockPublisher.EXPECT().
		Publish(ctx, models.PaymentEventsTopic, "payment-123", mock.Anything).
		Return(errors.New("broker down")).
		Once()

	response, err := paymentService.UpdatePayment(ctx, "payment-123", &dto.PaymentUpdateRequest{Status: "FAILED"})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, apperrors.ErrBusUnavailable)
}
