package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the previous values once the test ends.
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("BRIDGE_SECRET", "bridge")
		t.Setenv("PAYVESSEL_API_KEY", "api")
		t.Setenv("PAYVESSEL_SECRET_KEY", "secret")
		t.Setenv("PAYVESSEL_BUSINESS_ID", "biz")
		t.Setenv("PAYVESSEL_BASE_URL", "http://localhost:1234")
		t.Setenv("PAYVESSEL_TIMEOUT", "3s")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "7")
		t.Setenv("TRUST_PROXY", "true")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "bridge", cfg.BridgeSecret)
		assert.Equal(t, "api", cfg.Payvessel.APIKey)
		assert.Equal(t, "secret", cfg.Payvessel.SecretKey)
		assert.Equal(t, "biz", cfg.Payvessel.BusinessID)
		assert.Equal(t, "http://localhost:1234", cfg.Payvessel.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Payvessel.Timeout)
		assert.Equal(t, 2.5, cfg.RateLimit.RPS)
		assert.Equal(t, 7, cfg.RateLimit.Burst)
		assert.True(t, cfg.TrustProxy)
		assert.True(t, cfg.Payvessel.HasCredentials())
	})

	t.Run("Defaults", func(t *testing.T) {
		for _, k := range []string{
			"APP_PORT", "APP_ENV", "BRIDGE_SECRET", "PAYVESSEL_API_KEY",
			"PAYVESSEL_SECRET_KEY", "PAYVESSEL_BUSINESS_ID", "PAYVESSEL_BASE_URL",
			"PAYVESSEL_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_PROXY",
		} {
			t.Setenv(k, "")
		}

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, defaultPayvesselBaseURL, cfg.Payvessel.BaseURL)
		assert.Equal(t, defaultPayvesselTimeout, cfg.Payvessel.Timeout)
		assert.Equal(t, float64(10), cfg.RateLimit.RPS)
		assert.Equal(t, 20, cfg.RateLimit.Burst)
		assert.False(t, cfg.TrustProxy)
		assert.False(t, cfg.Payvessel.HasCredentials())
	})

	t.Run("Invalid numbers fall back", func(t *testing.T) {
		t.Setenv("PAYVESSEL_TIMEOUT", "soon")
		t.Setenv("RATE_LIMIT_RPS", "-1")
		t.Setenv("RATE_LIMIT_BURST", "many")
		t.Setenv("TRUST_PROXY", "maybe")

		cfg := LoadConfig()

		assert.Equal(t, defaultPayvesselTimeout, cfg.Payvessel.Timeout)
		assert.Equal(t, float64(10), cfg.RateLimit.RPS)
		assert.Equal(t, 20, cfg.RateLimit.Burst)
		assert.False(t, cfg.TrustProxy)
	})
}

func TestHasCredentials(t *testing.T) {
	assert.False(t, PayvesselConfig{APIKey: "a"}.HasCredentials())
	assert.False(t, PayvesselConfig{SecretKey: "s"}.HasCredentials())
	assert.True(t, PayvesselConfig{APIKey: "a", SecretKey: "s"}.HasCredentials())
}
