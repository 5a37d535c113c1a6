package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Info("No .env file found, reading configuration from the environment")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Fraud
}

type DB struct {
	URL      string `env:"DB_URL,required"`
	USER     string `env:"DB_USER,required"`
	PASSWORD string `env:"DB_PASSWORD,required"`
	NAME     string `env:"DB_NAME" envDefault:"payments"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT string `env:"HTTP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers       string `env:"BUS_BOOTSTRAP,required"`
	ConsumerGroup string `env:"BUS_CONSUMER_GROUP" envDefault:"payment-group"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Fraud holds the connection settings for the outbound fraud-check endpoint.
// The timeout bounds every outbound call; an expired call is handled the same
// way as any other fraud-check failure.
type Fraud struct {
	URL       string `env:"FRAUD_CHECK_URL,required"`
	APIKey    string `env:"FRAUD_CHECK_API_KEY,required"`
	TimeoutMS int    `env:"FRAUD_CHECK_TIMEOUT_MS" envDefault:"5000"`
}

func (f Fraud) Timeout() time.Duration {
	return time.Duration(f.TimeoutMS) * time.Millisecond
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
