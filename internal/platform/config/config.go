package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret         = "a-very-secret-key-should-be-longer-and-random"
	defaultProvisionPassword = "ChangeMe@123"
)

// SMTP security modes.
const (
	SMTPSecurityNone     = "none"
	SMTPSecurityStartTLS = "starttls"
	SMTPSecuritySSL      = "ssl"
)

// ErrInsecureSecret is returned in production mode when JWT_SECRET is not set.
var ErrInsecureSecret = errors.New("JWT_SECRET must be set when IS_PRODUCTION is true")

// SMTPConfig holds outbound mail settings. An empty Host disables sending.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Security    string
	FromAddress string
	FromName    string
}

// Enabled reports whether a mail server is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	JWTAudience       string

	SMTP SMTPConfig

	// Employee ids that may be read but never updated or deleted.
	ProtectedEmployeeIDs domain.ProtectedRange

	// Password given to identities created by cmd/provision_identities.
	ProvisionDefaultPassword string

	// Login rate in ulule/limiter format, e.g. "5-M".
	LoginRateLimit     string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "backoffice-app")
	v.SetDefault("JWT_AUDIENCE", "backoffice-app-users")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_SECURITY", SMTPSecurityStartTLS)
	v.SetDefault("SMTP_FROM_ADDRESS", "no-reply@localhost")
	v.SetDefault("SMTP_FROM_NAME", "Back Office")
	v.SetDefault("PROTECTED_EMPLOYEE_ID_MIN", 1)
	v.SetDefault("PROTECTED_EMPLOYEE_ID_MAX", 30)
	v.SetDefault("PROVISION_DEFAULT_PASSWORD", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		JWTAudience:    v.GetString("JWT_AUDIENCE"),
		LoginRateLimit: v.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, ErrInsecureSecret
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	expiryMinutes := v.GetInt("JWT_EXPIRY_MINUTES")
	if expiryMinutes <= 0 {
		log.Printf("Warning: Invalid value for JWT_EXPIRY_MINUTES (%d). Defaulting to 60.\n", expiryMinutes)
		expiryMinutes = 60
	}
	cfg.JWTExpiryDuration = time.Duration(expiryMinutes) * time.Minute

	cfg.SMTP = SMTPConfig{
		Host:        v.GetString("SMTP_HOST"),
		Port:        v.GetInt("SMTP_PORT"),
		Username:    v.GetString("SMTP_USERNAME"),
		Password:    v.GetString("SMTP_PASSWORD"),
		Security:    strings.ToLower(v.GetString("SMTP_SECURITY")),
		FromAddress: v.GetString("SMTP_FROM_ADDRESS"),
		FromName:    v.GetString("SMTP_FROM_NAME"),
	}
	switch cfg.SMTP.Security {
	case SMTPSecurityNone, SMTPSecurityStartTLS, SMTPSecuritySSL:
	default:
		return nil, fmt.Errorf("invalid SMTP_SECURITY %q: want none, starttls or ssl", cfg.SMTP.Security)
	}
	if !cfg.SMTP.Enabled() {
		log.Println("Warning: SMTP_HOST not set. E-mail notifications are disabled.")
	}

	cfg.ProtectedEmployeeIDs = domain.ProtectedRange{
		Min: v.GetInt64("PROTECTED_EMPLOYEE_ID_MIN"),
		Max: v.GetInt64("PROTECTED_EMPLOYEE_ID_MAX"),
	}
	if cfg.ProtectedEmployeeIDs.Max < cfg.ProtectedEmployeeIDs.Min {
		log.Println("Warning: PROTECTED_EMPLOYEE_ID_MAX is below PROTECTED_EMPLOYEE_ID_MIN. No employee is protected.")
	}

	cfg.ProvisionDefaultPassword = v.GetString("PROVISION_DEFAULT_PASSWORD")
	if cfg.ProvisionDefaultPassword == "" {
		cfg.ProvisionDefaultPassword = defaultProvisionPassword
		log.Println("Warning: PROVISION_DEFAULT_PASSWORD not set. Provisioned identities get the default password.")
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
