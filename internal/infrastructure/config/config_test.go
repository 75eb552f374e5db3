package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.ConfigServiceURL)
	assert.Equal(t, 15*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, 10*time.Second, cfg.CompatCheckTimeout)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, "build_sessions", cfg.SessionsTable)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "strict", cfg.ReviewGate)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "us-east-1", cfg.DynamoDB.Region)
	assert.False(t, cfg.MercadoPago.Mock)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"PORT":                 "9090",
		"CONFIG_SERVICE_URL":   "https://builder.example.com/api/",
		"REMOTE_TIMEOUT":       "2s",
		"SESSION_STORE":        "DynamoDB",
		"SESSION_TTL":          "30m",
		"REVIEW_GATE":          "observed",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com, https://b.example.com",
		"DYNAMODB_ENDPOINT":    "http://dynamodb:8000",
		"MERCADOPAGO_MOCK":     "yes",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "https://builder.example.com/api", cfg.ConfigServiceURL)
	assert.Equal(t, 2*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, SessionStoreDynamoDB, cfg.SessionStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "observed", cfg.ReviewGate)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://dynamodb:8000", cfg.DynamoDB.Endpoint)
	assert.True(t, cfg.MercadoPago.Mock)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	_, err := LoadFrom(envMap(map[string]string{
		"PORT":           "http",
		"REMOTE_TIMEOUT": "soon",
		"SESSION_STORE":  "redis",
		"REVIEW_GATE":    "lenient",
	}))
	require.Error(t, err)
	for _, key := range []string{"PORT", "REMOTE_TIMEOUT", "SESSION_STORE", "REVIEW_GATE"} {
		assert.Contains(t, err.Error(), key)
	}
}
