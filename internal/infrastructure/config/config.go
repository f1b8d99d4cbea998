package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"killbill_bluepay/internal/infrastructure/accounts"
	"killbill_bluepay/internal/infrastructure/database"
	"killbill_bluepay/internal/infrastructure/payments"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendDynamoDB = "dynamodb"
)

// Config is the process configuration, read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - STORE_BACKEND: postgres | dynamodb (default: postgres)
//   - DB_CONNECTION_STRING, DB_AUTO_MIGRATE (postgres backend)
//   - AWS_REGION, DYNAMODB_ENDPOINT, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY (dynamodb backend)
//   - PAYMENT_GATEWAY: bluepay | mercadopago (default: bluepay)
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK
//   - BLUEPAY_URL, BLUEPAY_TIMEOUT
//   - KILLBILL_URL, KILLBILL_API_KEY, KILLBILL_API_SECRET, KILLBILL_USERNAME, KILLBILL_PASSWORD
type Config struct {
	Port         string
	StoreBackend string

	PostgresConnString string
	AutoMigrate        bool

	DynamoDB database.DynamoDBSettings
	Gateway  payments.Settings
	KillBill accounts.Settings
}

func Load() (Config, error) {
	timeout, err := time.ParseDuration(getenvDefault("BLUEPAY_TIMEOUT", payments.DefaultBluePayTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid BLUEPAY_TIMEOUT: %w", err)
	}

	cfg := Config{
		Port:               getenvDefault("PORT", "8080"),
		StoreBackend:       strings.ToLower(getenvDefault("STORE_BACKEND", StoreBackendPostgres)),
		PostgresConnString: os.Getenv("DB_CONNECTION_STRING"),
		AutoMigrate:        isEnabled("DB_AUTO_MIGRATE"),
		DynamoDB: database.DynamoDBSettings{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		Gateway: payments.Settings{
			Provider:   getenvDefault("PAYMENT_GATEWAY", payments.ProviderBluePay),
			Mock:       isEnabled("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"),
			BluePayURL: getenvDefault("BLUEPAY_URL", payments.DefaultBluePayURL),
			Timeout:    timeout,
		},
		KillBill: accounts.Settings{
			BaseURL:   getenvDefault("KILLBILL_URL", "http://localhost:8080"),
			APIKey:    os.Getenv("KILLBILL_API_KEY"),
			APISecret: os.Getenv("KILLBILL_API_SECRET"),
			Username:  getenvDefault("KILLBILL_USERNAME", "admin"),
			Password:  getenvDefault("KILLBILL_PASSWORD", "password"),
		},
	}

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	if cfg.DynamoDB.Endpoint != "" && cfg.DynamoDB.AccessKeyID == "" {
		cfg.DynamoDB.AccessKeyID = "local"
		cfg.DynamoDB.SecretAccessKey = "local"
	}

	switch cfg.StoreBackend {
	case StoreBackendPostgres, StoreBackendDynamoDB:
	default:
		return Config{}, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isEnabled(keys ...string) bool {
	for _, key := range keys {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
