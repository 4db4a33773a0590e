package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultTelephonePattern принимает бразильские номера: (11) 91234-5678, 1134567890.
const DefaultTelephonePattern = `^\(?[1-9]{2}\)? ?(?:9\d{4}|[2-8]\d{3})-?\d{4}$`

type (
	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	Tasks struct {
		DeliveryStatsInterval time.Duration `env:"BACKGROUND_DELIVERY_STATS_INTERVAL" envDefault:"30s"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // middleware rate limiter rate
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // middleware rate limiter burst
		PprofEnabled     bool          `env:"PPROF_ENABLED"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Database struct {
		Host           string `env:"POSTGRES_HOST"`
		Port           string `env:"POSTGRES_PORT"`
		User           string `env:"POSTGRES_USER"`
		Password       string `env:"POSTGRES_PASSWORD"`
		DBName         string `env:"POSTGRES_DB"`
		SSLMode        string `env:"POSTGRES_SSLMODE"`
		MigrationsAuto bool   `env:"POSTGRES_MIGRATIONS_AUTO"`
		MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
		MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	}

	Kafka struct {
		PortHealthcheck string `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string `env:"KAFKA_BROKERS"`
		Topic           string `env:"KAFKA_DELIVERY_EMAIL_TOPIC"`
		ConsumerGroup   string `env:"KAFKA_CONSUMER_GROUP"`
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string `env:"KAFKA_SARAMA_VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"`
	}

	KafkaHandlers struct {
		DeliveryEmail DeliveryEmail
	}

	DeliveryEmail struct {
		ProcessTimeout time.Duration `env:"KAFKA_HANDLER_DELIVERY_EMAIL_PROCESS_TIMEOUT"`
	}

	Notification struct {
		Workers        int           `env:"NOTIFICATION_WORKERS" envDefault:"4"`
		QueueSize      int           `env:"NOTIFICATION_QUEUE_SIZE" envDefault:"256"`
		PublishTimeout time.Duration `env:"NOTIFICATION_PUBLISH_TIMEOUT" envDefault:"5s"`
	}

	Validation struct {
		TelephonePattern string `env:"CLIENT_TELEPHONE_PATTERN"`
	}

	Mail struct {
		Region    string `env:"SES_REGION"`
		AccessKey string `env:"SES_ACCESS_KEY"`
		SecretKey string `env:"SES_SECRET_KEY"`
		From      string `env:"MAIL_FROM"`
	}

	Config struct {
		Log          Log
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Kafka        Kafka
		Notification Notification
		Validation   Validation
		Mail         Mail
	}
)

// LoadService читает конфигурацию HTTP сервиса.
func LoadService() (*Config, error) {
	return load(validateService)
}

// LoadWorker читает конфигурацию воркера рассылки писем.
func LoadWorker() (*Config, error) {
	return load(validateWorker)
}

func load(validate func(cfg *Config) error) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Validation.TelephonePattern == "" {
		cfg.Validation.TelephonePattern = DefaultTelephonePattern
	}
	return cfg, nil
}

func validateService(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.DeliveryStatsInterval <= time.Duration(0) {
		return errors.New("BACKGROUND_DELIVERY_STATS_INTERVAL must be positive")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_DELIVERY_EMAIL_TOPIC is required")
	}

	if cfg.Notification.Workers <= 0 {
		return errors.New("NOTIFICATION_WORKERS must be positive")
	}
	if cfg.Notification.QueueSize <= 0 {
		return errors.New("NOTIFICATION_QUEUE_SIZE must be positive")
	}
	if cfg.Notification.PublishTimeout <= time.Duration(0) {
		return errors.New("NOTIFICATION_PUBLISH_TIMEOUT must be positive")
	}

	return nil
}

func validateWorker(cfg *Config) error {
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_DELIVERY_EMAIL_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.DeliveryEmail.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DELIVERY_EMAIL_PROCESS_TIMEOUT is required")
	}

	if cfg.Mail.Region == "" {
		return errors.New("SES_REGION is required")
	}
	if cfg.Mail.From == "" {
		return errors.New("MAIL_FROM is required")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}
