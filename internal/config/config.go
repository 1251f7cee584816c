package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"     validate:"required"`
	Kafka     KafkaConfig     `yaml:"kafka"     validate:"required"`
	Checkout  CheckoutConfig  `yaml:"checkout"  validate:"required"`
	YooKassa  YooKassaConfig  `yaml:"yookassa"  validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"reticket"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Addr    string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379" validate:"required"`
	LinkTTL time.Duration `yaml:"link_ttl" env:"REDIS_LINK_TTL" env-default:"5m"             validate:"gt=0"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092" env-separator:"," validate:"required,min=1"`
	Topic   string   `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"seller-earnings"                  validate:"required"`
}

// CheckoutConfig tunes the purchase flow. Commission and VAT rates are
// fractions, not percentages: "0.06" means 6%.
type CheckoutConfig struct {
	ReservationTTL time.Duration `yaml:"reservation_ttl" env:"CHECKOUT_RESERVATION_TTL" env-default:"10m"  validate:"gt=0"`
	PaymentWindow  time.Duration `yaml:"payment_window"  env:"CHECKOUT_PAYMENT_WINDOW"  env-default:"5m"   validate:"gt=0"`
	MaxTickets     int           `yaml:"max_tickets"     env:"CHECKOUT_MAX_TICKETS"     env-default:"10"   validate:"min=1"`
	CommissionRate string        `yaml:"commission_rate" env:"CHECKOUT_COMMISSION_RATE" env-default:"0.06"     validate:"required"`
	VATRate        string        `yaml:"vat_rate"        env:"CHECKOUT_VAT_RATE"        env-default:"0.22"     validate:"required"`
	Provider       string        `yaml:"provider"        env:"CHECKOUT_PROVIDER"        env-default:"yookassa" validate:"required"`
	SuccessURL     string        `yaml:"success_url"     env:"CHECKOUT_SUCCESS_URL"     env-default:"http://localhost:8080/orders"                validate:"required,url"`
	BackURL        string        `yaml:"back_url"        env:"CHECKOUT_BACK_URL"        env-default:"http://localhost:8080/orders"                validate:"required,url"`
	NotifyURL      string        `yaml:"notify_url"      env:"CHECKOUT_NOTIFY_URL"      env-default:"http://localhost:8080/api/webhooks/yookassa" validate:"required,url"`
}

type YooKassaConfig struct {
	ShopID    string `yaml:"shop_id"    env:"YOOKASSA_SHOP_ID"    validate:"required"`
	SecretKey string `yaml:"secret_key" env:"YOOKASSA_SECRET_KEY" validate:"required"`
	BaseURL   string `yaml:"base_url"   env:"YOOKASSA_BASE_URL"   env-default:"https://api.yookassa.ru/v3" validate:"required,url"`
}

type SchedulerConfig struct {
	Interval      time.Duration `yaml:"interval"        env:"SCHEDULER_INTERVAL"        env-default:"5m" validate:"required,gt=0"`
	MinPaymentAge time.Duration `yaml:"min_payment_age" env:"SCHEDULER_MIN_PAYMENT_AGE" env-default:"5m" validate:"required,gt=0"`
	BatchSize     int           `yaml:"batch_size"      env:"SCHEDULER_BATCH_SIZE"      env-default:"25" validate:"min=1"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
