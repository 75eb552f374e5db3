package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreDynamoDB = "dynamodb"
)

// Config is the service configuration read from the environment. A .env file
// is loaded by cmd/api before Load runs.
type Config struct {
	Port     int
	LogLevel string

	ConfigServiceURL   string
	RemoteTimeout      time.Duration
	CompatCheckTimeout time.Duration

	SessionStore  string
	SessionsTable string
	SessionTTL    time.Duration
	ReviewGate    string

	CORSAllowedOrigins []string

	DynamoDB    DynamoDBConfig
	MercadoPago MercadoPagoConfig
}

// DynamoDBConfig keeps the local-friendly defaults of the DynamoDB client.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type MercadoPagoConfig struct {
	AccessToken string
	Mock        bool
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv.
func LoadFrom(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	var errs []error
	duration := func(key string, def time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", key, raw))
			return def
		}
		return d
	}

	cfg := Config{
		LogLevel:           get("LOG_LEVEL", "info"),
		ConfigServiceURL:   strings.TrimRight(get("CONFIG_SERVICE_URL", "http://localhost:5000/api"), "/"),
		RemoteTimeout:      duration("REMOTE_TIMEOUT", 15*time.Second),
		CompatCheckTimeout: duration("COMPAT_CHECK_TIMEOUT", 10*time.Second),
		SessionStore:       strings.ToLower(get("SESSION_STORE", SessionStoreMemory)),
		SessionsTable:      get("SESSIONS_TABLE", "build_sessions"),
		SessionTTL:         duration("SESSION_TTL", 24*time.Hour),
		ReviewGate:         strings.ToLower(get("REVIEW_GATE", "strict")),
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		DynamoDB: DynamoDBConfig{
			Region:          get("AWS_REGION", "us-east-1"),
			Endpoint:        get("DYNAMODB_ENDPOINT", ""),
			AccessKeyID:     get("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", "local"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken: get("MERCADOPAGO_ACCESS_TOKEN", ""),
			Mock:        truthy(get("PAYMENT_GATEWAY_MOCK", "")) || truthy(get("MERCADOPAGO_MOCK", "")),
		},
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: invalid port %q", get("PORT", "")))
		port = 8080
	}
	cfg.Port = port

	switch cfg.SessionStore {
	case SessionStoreMemory, SessionStoreDynamoDB:
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE: unsupported store %q", cfg.SessionStore))
	}
	switch cfg.ReviewGate {
	case "strict", "observed":
	default:
		errs = append(errs, fmt.Errorf("REVIEW_GATE: unsupported gate %q", cfg.ReviewGate))
	}

	return cfg, errors.Join(errs...)
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
