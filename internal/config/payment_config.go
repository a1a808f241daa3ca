package config

import (
	"strconv"
	"time"
)

const (
	paymentThresholdVar = "PAYMENT_THRESHOLD"
	paymentBaseURLVar   = "PAYMENT_BASE_URL"
	paymentTimeoutVar   = "PAYMENT_TIMEOUT"
	productPriceVar     = "PRODUCT_PRICE"

	defaultPaymentThreshold = 49.99
	defaultPaymentTimeout   = 10 * time.Second
)

type Payment struct{}

var _ PaymentConfig = Payment{}

func (Payment) GetPaymentThreshold() float64 {
	return getFloat(paymentThresholdVar, defaultPaymentThreshold)
}

func (Payment) GetPaymentBaseURL() string {
	return GetEnv(paymentBaseURLVar, "http://localhost:8080")
}

func (Payment) GetPaymentTimeout() time.Duration {
	raw := GetEnv(paymentTimeoutVar, "")
	if raw == "" {
		return defaultPaymentTimeout
	}
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return defaultPaymentTimeout
	}
	return timeout
}

func (Payment) GetProductPrice() float64 {
	return getFloat(productPriceVar, defaultPaymentThreshold)
}

func getFloat(envVar string, defaultValue float64) float64 {
	raw := GetEnv(envVar, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
