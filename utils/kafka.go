package utils

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	kafkaWriter *kafka.Writer
	kafkaBroker string
	kafkaTopic  string
)

// InitializeKafka sets up the shared writer for the notification topic.
// When KAFKA_BROKER is unset the pipeline degrades to in-process delivery.
func InitializeKafka() {
	kafkaBroker = os.Getenv("KAFKA_BROKER")
	kafkaTopic = os.Getenv("KAFKA_NOTIFICATION_TOPIC")
	if kafkaTopic == "" {
		kafkaTopic = "agd.notifications"
	}

	if kafkaBroker == "" {
		log.Println("ℹ️ KAFKA_BROKER not set, notification fan-out runs in-process")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(kafkaBroker),
		Topic:        kafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
	}
	log.Printf("✅ Kafka writer ready (broker=%s topic=%s)", kafkaBroker, kafkaTopic)
}

// IsKafkaEnabled reports whether a broker was configured.
func IsKafkaEnabled() bool {
	return kafkaWriter != nil
}

// PublishMessage writes one message to the notification topic.
func PublishMessage(ctx context.Context, key string, value []byte) error {
	if kafkaWriter == nil {
		return nil
	}
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

// NewConsumer returns a reader on the notification topic for the given
// consumer group.
func NewConsumer(groupID string) *kafka.Reader {
	if kafkaBroker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{kafkaBroker},
		GroupID:  groupID,
		Topic:    kafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
