// Package kafka wraps segmentio/kafka-go for publishing domain events.
package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string
}
