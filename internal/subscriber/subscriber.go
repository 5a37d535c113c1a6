package subscriber

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaConsumer reads payment events under a consumer group and hands each
// message to the registered handler. Handler errors are logged and the
// message is not redelivered; the consumer is observational, not part of the
// payment lifecycle's critical path.
type KafkaConsumer struct {
	Readers []*kafka.Reader
}

func NewMultiTopicConsumer(brokers []string, topics []string, groupID string) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{Readers: readers}
}

func (c *KafkaConsumer) Listen(ctx context.Context, handler func(ctx context.Context, topic string, value []byte) error) {
	for _, reader := range c.Readers {
		go func(r *kafka.Reader) {
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					logrus.Errorf("Kafka error: %s", err.Error())
					continue
				}
				if err := handler(ctx, msg.Topic, msg.Value); err != nil {
					logrus.Errorf("Error handling message from topic %s: %s", msg.Topic, err.Error())
				}
			}
		}(reader)
	}
}

func (c *KafkaConsumer) Close() error {
	var lastErr error
	for _, reader := range c.Readers {
		if err := reader.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
