// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Store backends
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Config defines the configuration options for this service.
type Config struct {
	BindAddr     string `env:"BIND_ADDR"            flag:"bind-addr"              flagDesc:"Bind address"`
	HostURL      string `env:"HOST_URL"             flag:"host-url"               flagDesc:"Public URL of this service, used for gateway callbacks"`
	StoreBackend string `env:"STORE_BACKEND"        flag:"store-backend"          flagDesc:"Entity store backend: memory, mongo or postgres"`
	MongoDBURL   string `env:"MONGODB_URL"          flag:"mongodb-url"            flagDesc:"MongoDB server URL"`
	Database     string `env:"MONGODB_DATABASE"     flag:"mongodb-database"       flagDesc:"MongoDB database for data"`
	PostgresURL  string `env:"POSTGRES_URL"         flag:"postgres-url"           flagDesc:"PostgreSQL connection URL"`

	PhonePeMerchantID      string `env:"PHONEPE_MERCHANT_ID"      flag:"phonepe-merchant-id"      flagDesc:"PhonePe merchant ID"`
	PhonePeSaltKey         string `env:"PHONEPE_SALT_KEY"         flag:"phonepe-salt-key"         flagDesc:"PhonePe salt key"`
	PhonePeSaltIndex       string `env:"PHONEPE_SALT_INDEX"       flag:"phonepe-salt-index"       flagDesc:"PhonePe salt index"`
	PhonePeMode            string `env:"PHONEPE_MODE"             flag:"phonepe-mode"             flagDesc:"SANDBOX or PRODUCTION"`
	PhonePeVerifyCallbacks bool   `env:"PHONEPE_VERIFY_CALLBACKS" flag:"phonepe-verify-callbacks" flagDesc:"Reject gateway callbacks without a valid X-VERIFY header"`

	PaypalClientID string `env:"PAYPAL_CLIENT_ID"     flag:"paypal-client-id"       flagDesc:"PayPal client ID"`
	PaypalSecret   string `env:"PAYPAL_SECRET"        flag:"paypal-secret"          flagDesc:"PayPal secret"`
	PaypalEnv      string `env:"PAYPAL_ENV"           flag:"paypal-env"             flagDesc:"PayPal environment: test or live"`
	PaypalCurrency string `env:"PAYPAL_CURRENCY"      flag:"paypal-currency"        flagDesc:"Currency international orders are charged in"`
	PaypalRate     string `env:"PAYPAL_EXCHANGE_RATE" flag:"paypal-exchange-rate"   flagDesc:"Units of the PayPal currency per rupee, required unless the currency is INR"`

	ShiprocketEmail          string `env:"SHIPROCKET_API_EMAIL"       flag:"shiprocket-api-email"       flagDesc:"Shiprocket API user email"`
	ShiprocketPassword       string `env:"SHIPROCKET_API_PASSWORD"    flag:"shiprocket-api-password"    flagDesc:"Shiprocket API user password"`
	ShiprocketBaseURL        string `env:"SHIPROCKET_BASE_URL"        flag:"shiprocket-base-url"        flagDesc:"Shiprocket external API URL"`
	ShiprocketPickupLocation string `env:"SHIPROCKET_PICKUP_LOCATION" flag:"shiprocket-pickup-location" flagDesc:"Registered Shiprocket pickup location name"`
	ShiprocketPickupPincode  string `env:"SHIPROCKET_PICKUP_PINCODE"  flag:"shiprocket-pickup-pincode"  flagDesc:"Pincode parcels are collected from"`
	RedisURL                 string `env:"REDIS_URL"                  flag:"redis-url"                  flagDesc:"Redis URL for sharing the Shiprocket token, in-memory when empty"`

	BrokerAddr        []string `env:"KAFKA_BROKER_ADDR"   flag:"broker-addr"            flagDesc:"Kafka broker address"`
	SchemaRegistryURL string   `env:"SCHEMA_REGISTRY_URL" flag:"schema-registry-url"    flagDesc:"Schema registry url"`

	AdminAPIKey              string `env:"ADMIN_API_KEY"              flag:"admin-api-key"              flagDesc:"Key admin requests must present in X-Admin-Key"`
	RateLimitPerSecond       int    `env:"RATE_LIMIT_PER_SECOND"      flag:"rate-limit-per-second"      flagDesc:"Public API requests allowed per second per client"`
	ReconcileIntervalSeconds int    `env:"RECONCILE_INTERVAL_SECONDS" flag:"reconcile-interval-seconds" flagDesc:"Seconds between payment status polls, 0 disables polling"`

	TrustedProxies []string `env:"TRUSTED_PROXY" flag:"trusted-proxy" flagDesc:"Addresses of proxies whose X-Forwarded-For is believed"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:                 ":4000",
		StoreBackend:             StoreMemory,
		Database:                 "storefront",
		PhonePeSaltIndex:         "1",
		PhonePeMode:              "SANDBOX",
		PaypalEnv:                "test",
		PaypalCurrency:           "INR",
		ShiprocketPickupLocation: "Primary",
		RateLimitPerSecond:       10,
		ReconcileIntervalSeconds: 60,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
