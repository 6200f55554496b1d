package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Pagination  PaginationConfig
	RateLimit   RateLimitConfig
	Policy      PolicyConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     time.Duration
	RefreshExpiration time.Duration
	SessionExpTime    time.Duration
	InternalAPIKey    string
}

// OTPConfig holds the one-time code policy. Windows are per purpose.
type OTPConfig struct {
	Length              int
	VerificationWindow  time.Duration
	PasswordResetWindow time.Duration
	ResendCooldown      time.Duration
	ExposeInResponse    bool
}

type PaginationConfig struct {
	DefaultPerPage int
	MaxPerPage     int
}

type RateRule struct {
	Limit  int
	Window time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	// TrustProxy keys the limiter on the first X-Forwarded-For hop. Enable it
	// only behind an ingress that overwrites the header.
	TrustProxy bool
	Login      RateRule
	Register   RateRule
	OTP        RateRule
}

type PolicyConfig struct {
	// RequireActiveFarmerForAdminCreate makes admins unable to create animals
	// for farmers whose account status is not active.
	RequireActiveFarmerForAdminCreate bool
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", ""),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "farm_portal"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "change-me"),
			JWTExpiration:     getDuration("JWT_EXPIRATION", time.Hour),
			RefreshExpiration: getDuration("JWT_REFRESH_EXPIRATION", 30*24*time.Hour),
			SessionExpTime:    getDuration("SESSION_EXP_TIME", time.Hour),
			InternalAPIKey:    getEnv("INTERNAL_API_KEY", ""),
		},
		OTP: OTPConfig{
			Length:              getInt("OTP_LENGTH", 6),
			VerificationWindow:  getDuration("OTP_VERIFICATION_WINDOW", 10*time.Minute),
			PasswordResetWindow: getDuration("OTP_PASSWORD_RESET_WINDOW", 30*time.Minute),
			ResendCooldown:      getDuration("OTP_RESEND_COOLDOWN", 60*time.Second),
			ExposeInResponse:    getBool("OTP_EXPOSE_IN_RESPONSE", false),
		},
		Pagination: PaginationConfig{
			DefaultPerPage: getInt("PAGINATION_DEFAULT_PER_PAGE", 20),
			MaxPerPage:     getInt("PAGINATION_MAX_PER_PAGE", 100),
		},
		RateLimit: RateLimitConfig{
			Enabled:    getBool("RATE_LIMIT_ENABLED", true),
			TrustProxy: getBool("RATE_LIMIT_TRUST_PROXY", false),
			Login:      RateRule{Limit: getInt("RATE_LIMIT_LOGIN", 5), Window: time.Minute},
			Register:   RateRule{Limit: getInt("RATE_LIMIT_REGISTER", 3), Window: time.Minute},
			OTP:        RateRule{Limit: getInt("RATE_LIMIT_OTP", 3), Window: time.Minute},
		},
		Policy: PolicyConfig{
			RequireActiveFarmerForAdminCreate: getBool("POLICY_REQUIRE_ACTIVE_FARMER_FOR_ADMIN_CREATE", false),
		},
	}
}

// GetDSN returns the MySQL data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ExposeOTP reports whether issued codes may be echoed back to the client.
func (c *Config) ExposeOTP() bool {
	return c.OTP.ExposeInResponse && !c.IsProduction()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
