package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintechlabs/payment-service/internal/apperrors"
	"github.com/fintechlabs/payment-service/internal/metrics"
	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/fintechlabs/payment-service/internal/models/dto"
	"github.com/fintechlabs/payment-service/internal/repository/posgrest"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PaymentRepo defines the interface for payment data persistence operations.
// Save must allocate an id on first persistence and fail with
// posgrest.ErrVersionConflict when a status update lost a concurrent race.
type PaymentRepo interface {
	Save(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
}

// FraudChecker defines the interface for the outbound fraud-check call.
type FraudChecker interface {
	Check(ctx context.Context, payment *models.Payment) (*models.FraudVerdict, error)
}

// Publisher defines the interface for publishing keyed events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, message interface{}) error
}

// PaymentService is the transactional core of the payment lifecycle. It is
// the sole mutator of payment records and the sole producer of payment
// events: every committed create publishes exactly one CREATED event and
// every committed update exactly one UPDATED event, both carrying the
// post-commit snapshot. The service is stateless; concurrent updates to the
// same payment serialize through the store's optimistic versioning.
type PaymentService struct {
	Repo         PaymentRepo
	FraudChecker FraudChecker
	Publisher    Publisher
}

func NewPaymentService(repo PaymentRepo, fraudChecker FraudChecker, publisher Publisher) *PaymentService {
	return &PaymentService{
		Repo:         repo,
		FraudChecker: fraudChecker,
		Publisher:    publisher,
	}
}

// CreatePayment validates the request, persists a new payment in PENDING and
// publishes a CREATED event after the commit. A validation failure persists
// nothing and emits nothing; a persistence failure emits nothing.
func (s *PaymentService) CreatePayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	req.Sanitize()
	if fields := req.Validate(); fields != nil {
		return nil, &apperrors.ValidationError{Fields: fields}
	}

	payment := req.ToEntity()
	if err := s.Repo.Save(ctx, payment); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	logrus.Infof("Payment created with ID: %s", payment.ID)

	if err := s.publishEvent(ctx, models.EventCreated, payment); err != nil {
		return nil, err
	}

	return dto.FromEntity(payment), nil
}

func (s *PaymentService) GetPaymentByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return dto.FromEntity(payment), nil
}

func (s *PaymentService) GetAllPayments(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	responses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, *dto.FromEntity(&payments[i]))
	}
	return responses, nil
}

// UpdatePayment runs the status state machine. A request for PAID first
// consults the fraud checker: a positive verdict overrides the target to
// FRAUD, an unavailable check refuses the update outright. FRAUD can never
// be requested directly and terminal states accept no transition. A version
// conflict against a concurrent writer is re-evaluated once before giving
// up.
func (s *PaymentService) UpdatePayment(ctx context.Context, id string, req *dto.PaymentUpdateRequest) (*dto.PaymentResponse, error) {
	req.Sanitize()
	if fields := req.Validate(); fields != nil {
		return nil, &apperrors.ValidationError{Fields: fields}
	}

	requested := models.PaymentStatus(req.Status)
	if requested == models.StatusFraud {
		return nil, fmt.Errorf("%w: FRAUD cannot be requested directly", apperrors.ErrIllegalTransition)
	}

	payment, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w with ID: %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	target := requested
	if target == models.StatusPaid {
		verdict, err := s.FraudChecker.Check(ctx, payment)
		if err != nil {
			return nil, err
		}
		if verdict.Fraudulent {
			metrics.FraudChecks.WithLabelValues("fraudulent").Inc()
			target = models.StatusFraud
		} else {
			metrics.FraudChecks.WithLabelValues("clean").Inc()
		}
	}

	payment, err = s.transition(ctx, payment, target)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Payment updated with ID: %s, new status: %s", payment.ID, payment.Status)

	if err := s.publishEvent(ctx, models.EventUpdated, payment); err != nil {
		return nil, err
	}

	return dto.FromEntity(payment), nil
}

// transition applies the state-machine check and the conditional write. On a
// version conflict the payment is reloaded and the transition re-evaluated
// against the fresh status before one retry.
func (s *PaymentService) transition(ctx context.Context, payment *models.Payment, target models.PaymentStatus) (*models.Payment, error) {
	for attempt := 0; ; attempt++ {
		if !payment.Status.CanTransitionTo(target) {
			return nil, fmt.Errorf("%w: %s -> %s", apperrors.ErrIllegalTransition, payment.Status, target)
		}

		payment.Status = target
		err := s.Repo.Save(ctx, payment)
		if err == nil {
			return payment, nil
		}
		if !errors.Is(err, posgrest.ErrVersionConflict) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		if attempt > 0 {
			return nil, fmt.Errorf("%w: concurrent update on payment %s", apperrors.ErrIllegalTransition, payment.ID)
		}

		logrus.Warnf("Concurrent update detected for payment ID %s, re-evaluating transition", payment.ID)
		payment, err = s.Repo.FindByID(ctx, payment.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
	}
}

// publishEvent hands the post-commit snapshot to the bus, keyed by payment
// id. A publish failure does not roll back the commit: the persisted state
// stays authoritative and the miss is logged loudly for operators.
func (s *PaymentService) publishEvent(ctx context.Context, eventType models.EventType, payment *models.Payment) error {
	event := models.NewPaymentEvent(eventType, *payment)
	if err := s.Publisher.Publish(ctx, models.PaymentEventsTopic, payment.ID, event); err != nil {
		logrus.Errorf("Payment %s committed but %s event was not published: %s", payment.ID, eventType, err.Error())
		return fmt.Errorf("%w: %v", apperrors.ErrBusUnavailable, err)
	}
	return nil
}
