package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderRazorpay    = "razorpay"
	ProviderMercadoPago = "mercadopago"
)

var (
	ErrMissingJWTSecret     = errors.New("missing JWT_SECRET")
	ErrUnknownProvider      = errors.New("unknown PAYMENT_PROVIDER")
	ErrInvalidNotifySetting = errors.New("NOTIFY_WORKERS and NOTIFY_QUEUE_SIZE must be positive")
)

// Config is the process configuration, read once at startup from the environment
// (a .env file is loaded beforehand by godotenv/autoload).
type Config struct {
	Port    string
	GinMode string

	JWTSecret string
	// Location is the zone requestedDateTime values are interpreted in.
	Location *time.Location

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	PaymentProvider          string
	PaymentGatewayMock       bool
	PaymentGatewayTimeout    time.Duration
	Currency                 string
	RazorpayKeyID            string
	RazorpayKeySecret        string
	MercadoPagoAccessToken   string
	MercadoPagoPublicKey     string
	MercadoPagoWebhookSecret string
	MockGatewaySecret        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NotifyQueueSize    int
	NotifyWorkers      int
	NotifyMaxRetries   int
	NotifyRetryBackoff time.Duration
	PayoutQueueKey     string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("PAYMENT_PROVIDER", ProviderRazorpay)
	v.SetDefault("PAYMENT_GATEWAY_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_CURRENCY", "INR")
	v.SetDefault("MOCK_GATEWAY_SECRET", "mock_secret")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFY_QUEUE_SIZE", 256)
	v.SetDefault("NOTIFY_WORKERS", 2)
	v.SetDefault("NOTIFY_MAX_RETRIES", 3)
	v.SetDefault("NOTIFY_RETRY_BACKOFF", "200ms")
	v.SetDefault("PAYOUT_QUEUE_KEY", "payout_queue")
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:                     v.GetString("PORT"),
		GinMode:                  v.GetString("GIN_MODE"),
		JWTSecret:                strings.TrimSpace(v.GetString("JWT_SECRET")),
		AWSRegion:                v.GetString("AWS_REGION"),
		AWSAccessKeyID:           v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:       v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:         v.GetString("DYNAMODB_ENDPOINT"),
		PaymentProvider:          strings.ToLower(strings.TrimSpace(v.GetString("PAYMENT_PROVIDER"))),
		PaymentGatewayMock:       isToggleOn(v.GetString("PAYMENT_GATEWAY_MOCK")) || isToggleOn(v.GetString("MERCADOPAGO_MOCK")),
		PaymentGatewayTimeout:    v.GetDuration("PAYMENT_GATEWAY_TIMEOUT"),
		Currency:                 strings.ToUpper(strings.TrimSpace(v.GetString("PAYMENT_CURRENCY"))),
		RazorpayKeyID:            v.GetString("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:        v.GetString("RAZORPAY_KEY_SECRET"),
		MercadoPagoAccessToken:   v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		MercadoPagoPublicKey:     v.GetString("MERCADOPAGO_PUBLIC_KEY"),
		MercadoPagoWebhookSecret: v.GetString("MERCADOPAGO_WEBHOOK_SECRET"),
		MockGatewaySecret:        v.GetString("MOCK_GATEWAY_SECRET"),
		RedisAddr:                v.GetString("REDIS_ADDR"),
		RedisPassword:            v.GetString("REDIS_PASSWORD"),
		RedisDB:                  v.GetInt("REDIS_DB"),
		NotifyQueueSize:          v.GetInt("NOTIFY_QUEUE_SIZE"),
		NotifyWorkers:            v.GetInt("NOTIFY_WORKERS"),
		NotifyMaxRetries:         v.GetInt("NOTIFY_MAX_RETRIES"),
		NotifyRetryBackoff:       v.GetDuration("NOTIFY_RETRY_BACKOFF"),
		PayoutQueueKey:           v.GetString("PAYOUT_QUEUE_KEY"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}
	switch cfg.PaymentProvider {
	case ProviderRazorpay, ProviderMercadoPago:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.PaymentProvider)
	}
	if cfg.NotifyWorkers <= 0 || cfg.NotifyQueueSize <= 0 {
		return Config{}, ErrInvalidNotifySetting
	}

	loc, err := time.LoadLocation(v.GetString("APP_TIMEZONE"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc
	return cfg, nil
}

func isToggleOn(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
