package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	PayFast  PayFastConfig
	Mail     MailConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret   string
	Validity time.Duration
}

// PayFastConfig carries the gateway credentials plus the callback URLs the
// gateway posts back to. Sandbox toggles the process endpoint.
type PayFastConfig struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string
	Sandbox     bool
	ReturnURL   string
	CancelURL   string
	NotifyURL   string
}

type MailConfig struct {
	SendGridAPIKey string
	FromName       string
	FromEmail      string
}

type StorageConfig struct {
	// ImageBaseURL prefixes relative image paths stored in the database.
	ImageBaseURL string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "development"),
			HTTPPort:        getEnv("HTTP_PORT", ":8080"),
			ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "baypro"),
			Password:        getEnv("POSTGRES_PASSWORD", "baypro"),
			DBName:          getEnv("POSTGRES_DB", "baypro"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "change-this-to-something-random"),
			Validity: time.Duration(getEnvInt("JWT_VALIDITY_HOURS", 24*7)) * time.Hour,
		},
		PayFast: PayFastConfig{
			MerchantID:  getEnv("PAYFAST_MERCHANT_ID", ""),
			MerchantKey: getEnv("PAYFAST_MERCHANT_KEY", ""),
			Passphrase:  getEnv("PAYFAST_PASSPHRASE", ""),
			Sandbox:     getEnvBool("PAYFAST_SANDBOX", true),
			ReturnURL:   getEnv("PAYFAST_RETURN_URL", "https://partsbaypro.com/home/payment-success.php"),
			CancelURL:   getEnv("PAYFAST_CANCEL_URL", "https://partsbaypro.com/home/payment-cancel.php"),
			NotifyURL:   getEnv("PAYFAST_NOTIFY_URL", "https://partsbaypro.com/api/payment/payfast/callback"),
		},
		Mail: MailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromName:       getEnv("MAIL_FROM_NAME", "BayPro"),
			FromEmail:      getEnv("MAIL_FROM_EMAIL", "orders@partsbaypro.com"),
		},
		Storage: StorageConfig{
			ImageBaseURL: getEnv("IMAGE_BASE_URL", "https://partsbaypro.com/backend-php/"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
