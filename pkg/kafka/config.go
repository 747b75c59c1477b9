package kafka

// Config holds Kafka connection parameters.
type Config struct {
	Brokers []string

	// BatchTimeout in milliseconds; zero means 10ms.
	BatchTimeoutMs int
}
