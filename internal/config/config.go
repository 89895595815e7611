package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds payroll defaults that are not per-employee: which
// statutory deduction policy applies and the flat total used when the
// flat policy is selected.
type PayrollConfig struct {
	DeductionPolicy    string
	FlatDeductionTotal string
}

// Load reads configuration from the environment, with .env as an
// optional overlay for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "c4s-payroll"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET_KEY", ""),
			RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
			AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		},
		App: AppConfig{
			Port:        appPort,
			Env:         getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		Payroll: PayrollConfig{
			DeductionPolicy:    getEnv("PAYROLL_DEDUCTION_POLICY", "per_employee"),
			FlatDeductionTotal: getEnv("PAYROLL_FLAT_DEDUCTION_TOTAL", "750.00"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch c.Payroll.DeductionPolicy {
	case "per_employee", "flat":
	default:
		return fmt.Errorf("PAYROLL_DEDUCTION_POLICY must be per_employee or flat")
	}
	return nil
}

// DatabaseURL builds the PostgreSQL DSN. Credentials are URL-escaped so
// special characters in the password survive.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port),
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + c.Database.SSLMode,
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
