package config

import "time"

type Config interface {
	EnvConfig
	CorsConfig
	AuthConfig
	PaymentConfig
	RedisConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type AuthConfig interface {
	GetLoginEmail() string
	GetLoginPassword() string
	GetSessionStorageKey() string
}

type PaymentConfig interface {
	GetPaymentThreshold() float64
	GetPaymentBaseURL() string
	GetPaymentTimeout() time.Duration
	GetProductPrice() float64
}

type RedisConfig interface {
	GetRedisAddr() string
	GetRedisKeyPrefix() string
}

type mainConfig struct {
	EnvVars
	Cors
	Auth
	Payment
	Redis
}

func New() Config {
	return mainConfig{}
}
