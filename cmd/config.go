package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	AppEnv     string `validate:"oneof=production development test"`
	HTTPPort   string `validate:"required,numeric"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`

	KafkaBrokers     []string `validate:"required,min=1,dive,hostname_port"`
	KafkaEventsTopic string   `validate:"required"`

	OutboxRelaySchedule string `validate:"required"`
	OutboxBatchSize     int    `validate:"min=1,max=1000"`

	CurrencyRates      string  `validate:"required"`
	PricingCombination string  `validate:"oneof=max sum"`
	HTTPRateLimit      float64 `validate:"gte=0"`
}

// LoadConfig reads the configuration through getenv and validates it.
func LoadConfig(getenv func(string) string) (Config, error) {
	lookup := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	batchSize, err := strconv.Atoi(lookup("OUTBOX_BATCH_SIZE", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
	}

	rateLimit, err := strconv.ParseFloat(lookup("HTTP_RATE_LIMIT", "0"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("HTTP_RATE_LIMIT: %w", err)
	}

	config := Config{
		AppEnv:              lookup("APP_ENV", EnvDevelopment),
		HTTPPort:            lookup("HTTP_PORT", "8080"),
		DBHost:              getenv("DB_HOST"),
		DBPort:              lookup("DB_PORT", "5432"),
		DBUser:              getenv("DB_USER"),
		DBPassword:          getenv("DB_PASSWORD"),
		DBName:              getenv("DB_NAME"),
		DBSslMode:           lookup("DB_SSLMODE", "disable"),
		KafkaBrokers:        splitList(getenv("KAFKA_BROKERS")),
		KafkaEventsTopic:    lookup("KAFKA_EVENTS_TOPIC", "forwarding.package-events"),
		OutboxRelaySchedule: lookup("OUTBOX_RELAY_SCHEDULE", "*/5 * * * * *"),
		OutboxBatchSize:     batchSize,
		CurrencyRates:       getenv("CURRENCY_RATES"),
		PricingCombination:  lookup("PRICING_COMBINATION", "max"),
		HTTPRateLimit:       rateLimit,
	}

	if err = validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// EnvFromOS is the getenv used outside of tests.
func EnvFromOS(key string) string {
	return os.Getenv(key)
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
