package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fundline/pricing-service/internal/domain/service"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	TLS     bool
}

type JWTConfig struct {
	Secret       string
	PublicKeyPEM string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	JWT         JWTConfig
	ServiceName string
}

func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
	if c.JWT.Secret == "" && c.JWT.PublicKeyPEM == "" {
		panic("JWT_SECRET or JWT_PUBLIC_KEY_PEM environment variable is required")
	}
}

func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9094),
		HTTPPort: getEnvInt("HTTP_PORT", 8094),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "pricing"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "pricing"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "pricing.events"),
			TLS:     getEnvBool("KAFKA_TLS", false),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", ""),
			PublicKeyPEM: getEnv("JWT_PUBLIC_KEY_PEM", ""),
		},
		ServiceName: "pricing-service",
	}
}

// Policy returns the underwriting policy: the house defaults with any
// operator overrides from the environment applied. Breakpoints are commercial
// policy and must be tunable without a rebuild.
func (c Config) Policy() service.Policy {
	p := service.DefaultPolicy()
	p.MaxWithholdPercent = getEnvDecimal("POLICY_MAX_WITHHOLD_PERCENT", p.MaxWithholdPercent)
	p.MinFactorRate = getEnvDecimal("POLICY_MIN_FACTOR_RATE", p.MinFactorRate)
	p.MaxFactorRate = getEnvDecimal("POLICY_MAX_FACTOR_RATE", p.MaxFactorRate)
	p.MinFundingAmount = getEnvDecimal("POLICY_MIN_FUNDING_AMOUNT", p.MinFundingAmount)
	p.MaxFundingAmount = getEnvDecimal("POLICY_MAX_FUNDING_AMOUNT", p.MaxFundingAmount)
	p.MaxPosition = getEnvInt("POLICY_MAX_POSITION", p.MaxPosition)
	p.RiskScoreFloor = getEnvInt("POLICY_RISK_SCORE_FLOOR", p.RiskScoreFloor)
	return p
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}
