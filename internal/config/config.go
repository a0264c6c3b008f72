package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Workday  WorkdayConfig
	Seed     SeedConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port          int
	Env           string
	Timezone      *time.Location
	MigrationsDir string
}

// WorkdayConfig bounds the regular working day. Overtime may only be
// requested once the local hour reaches EndHour, and the payroll hourly
// rate divides by (EndHour - StartHour) hours per working day.
type WorkdayConfig struct {
	StartHour int
	EndHour   int
}

type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	EmployeeCount int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendly-payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	tz, err := time.LoadLocation(getEnv("APP_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}

	config.App = AppConfig{
		Port:          appPort,
		Env:           getEnv("APP_ENV", "development"),
		Timezone:      tz,
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	workStart, err := strconv.Atoi(getEnv("WORK_START_HOUR", "9"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_START_HOUR: %w", err)
	}
	workEnd, err := strconv.Atoi(getEnv("WORK_END_HOUR", "17"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_END_HOUR: %w", err)
	}
	config.Workday = WorkdayConfig{
		StartHour: workStart,
		EndHour:   workEnd,
	}

	employeeCount, err := strconv.Atoi(getEnv("SEED_EMPLOYEE_COUNT", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_EMPLOYEE_COUNT: %w", err)
	}
	config.Seed = SeedConfig{
		AdminUsername: getEnv("SEED_ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin"),
		EmployeeCount: employeeCount,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Workday.EndHour <= c.Workday.StartHour {
		return fmt.Errorf("WORK_END_HOUR must be greater than WORK_START_HOUR")
	}
	return nil
}

// HoursPerDay returns the length of a regular working day in whole hours.
func (c *Config) HoursPerDay() int {
	return c.Workday.EndHour - c.Workday.StartHour
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
