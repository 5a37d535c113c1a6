// Package consumer records the payment events this service publishes to the
// bus, in arrival order. Integration tests and operators read the recorded
// sequence to observe the flow; nothing in the payment lifecycle depends on
// it.
package consumer

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fintechlabs/payment-service/internal/metrics"
	"github.com/fintechlabs/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

type Recorder struct {
	mu     sync.Mutex
	events []models.PaymentEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleEvent decodes a payment-events message and appends it to the
// recorded sequence.
func (r *Recorder) HandleEvent(ctx context.Context, topic string, value []byte) error {
	var event models.PaymentEvent
	if err := json.Unmarshal(value, &event); err != nil {
		logrus.Errorf("Error parsing payment event: %s", err.Error())
		return err
	}

	logrus.Infof("Consumed event at %s: %s Payment with ID %s (amount=%s, status=%s)",
		event.Timestamp, event.Type,
		event.Payment.ID,
		event.Payment.Amount, event.Payment.Status)

	metrics.EventsConsumed.WithLabelValues(string(event.Type)).Inc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)

	return nil
}

// Events returns a snapshot of the recorded events in arrival order.
func (r *Recorder) Events() []models.PaymentEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]models.PaymentEvent, len(r.events))
	copy(snapshot, r.events)
	return snapshot
}
