package posgrest

import (
	"context"
	"errors"
	"time"

	"github.com/fintechlabs/payment-service/internal/models"
	"gorm.io/gorm"
)

// ErrVersionConflict is returned when a status update lost the race against a
// concurrent writer. Callers are expected to reload and re-evaluate.
var ErrVersionConflict = errors.New("payment was modified concurrently")

// PaymentRepository is the GORM-backed payment store. It allocates ids on
// first persistence and guards status updates with an optimistic version
// check; it does not enforce the state machine.
type PaymentRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		db,
	}
}

// Save upserts the payment. A payment without an id is inserted (the id is
// allocated in the BeforeCreate hook); one with an id gets a conditional
// status update that only lands if the loaded version is still current.
func (r *PaymentRepository) Save(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		return r.db.WithContext(ctx).Create(payment).Error
	}

	result := r.db.WithContext(ctx).
		Model(&models.Payment{}).
		Where("id = ? AND version = ?", payment.ID, payment.Version).
		Updates(map[string]interface{}{
			"status":     payment.Status,
			"version":    payment.Version + 1,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	payment.Version++
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// DeleteAll wipes the table. Only integration tests call this.
func (r *PaymentRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Payment{}).Error
}
