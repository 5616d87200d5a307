package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 9094, cfg.GRPCPort)
	assert.Equal(t, 8094, cfg.HTTPPort)
	assert.Equal(t, "pricing-service", cfg.ServiceName)
	assert.Equal(t, "pricing.events", cfg.Kafka.Topic)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, ":9094", cfg.GRPCAddr())
	assert.Equal(t, ":8094", cfg.HTTPAddr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TLS", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_PUBLIC_KEY_PEM", "-----BEGIN PUBLIC KEY-----")

	cfg := Load()

	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.TLS)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "-----BEGIN PUBLIC KEY-----", cfg.JWT.PublicKeyPEM)
}

func TestKafkaTLSDefaultsOff(t *testing.T) {
	t.Setenv("KAFKA_TLS", "")
	assert.False(t, Load().Kafka.TLS)

	t.Setenv("KAFKA_TLS", "not-a-bool")
	assert.False(t, Load().Kafka.TLS)
}

func TestValidate(t *testing.T) {
	t.Run("panics without a database password", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "")
		cfg := Load()
		assert.Panics(t, func() { cfg.Validate() })
	})

	t.Run("passes with password and JWT secret", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("JWT_SECRET", "secret")
		cfg := Load()
		assert.NotPanics(t, func() { cfg.Validate() })
	})
}

func TestPolicyOverrides(t *testing.T) {
	t.Run("defaults pass through untouched", func(t *testing.T) {
		p := Load().Policy()
		assert.Equal(t, "20", p.MaxWithholdPercent.String())
		assert.Equal(t, 4, p.MaxPosition)
		assert.Equal(t, 20, p.RiskScoreFloor)
	})

	t.Run("environment overrides apply", func(t *testing.T) {
		t.Setenv("POLICY_MAX_WITHHOLD_PERCENT", "15")
		t.Setenv("POLICY_MAX_POSITION", "2")
		t.Setenv("POLICY_MIN_FUNDING_AMOUNT", "10000")

		p := Load().Policy()
		require.Equal(t, "15", p.MaxWithholdPercent.String())
		assert.Equal(t, 2, p.MaxPosition)
		assert.Equal(t, "10000", p.MinFundingAmount.String())
	})

	t.Run("malformed overrides fall back to defaults", func(t *testing.T) {
		t.Setenv("POLICY_MAX_WITHHOLD_PERCENT", "not-a-number")

		p := Load().Policy()
		assert.Equal(t, "20", p.MaxWithholdPercent.String())
	})
}
