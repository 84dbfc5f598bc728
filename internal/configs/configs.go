package configs

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret"`

	// Cron spec for the periodic scheduler run.
	SchedulerSpec string `env:"SCHEDULER_SPEC" envDefault:"@hourly"`

	// Elapsed days before a customer is (re)considered for auto orders.
	EligibilityDays int `env:"ELIGIBILITY_DAYS" envDefault:"30"`
	// Look-ahead window materialized per eligible customer.
	WindowDays int `env:"WINDOW_DAYS" envDefault:"30"`

	// Delivery time window for generated orders, hours from midnight.
	DeliveryStartHour int `env:"DELIVERY_START_HOUR" envDefault:"11"`
	DeliveryEndHour   int `env:"DELIVERY_END_HOUR" envDefault:"14"`

	// Empty brokers disables order event publishing.
	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"order-events"`

	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"mealadmin"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}
