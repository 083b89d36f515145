package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Outbound rate-feed integration (admin triggered refresh).
	RatesAPIURL string
	RatesAPIKey string

	// OperatingTimezone is the business's fixed operating time zone,
	// used for all "today" resolution on rate lookups and reports.
	OperatingTimezone string
	Location          *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "remit-backend")
	viper.SetDefault("RATES_API_URL", "")
	viper.SetDefault("RATES_API_KEY", "")
	viper.SetDefault("OPERATING_TIMEZONE", "Pacific/Auckland")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")
	cfg.RatesAPIKey = viper.GetString("RATES_API_KEY")
	if cfg.RatesAPIURL == "" {
		log.Println("Warning: RATES_API_URL not set. Rate refresh endpoint will be unavailable.")
	}

	cfg.OperatingTimezone = viper.GetString("OPERATING_TIMEZONE")
	loc, err := time.LoadLocation(cfg.OperatingTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATING_TIMEZONE '%s': %w", cfg.OperatingTimezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// TodayKey returns the calendar date key (YYYY-MM-DD) for "now" in the
// business's operating time zone.
func (c *Config) TodayKey() string {
	return time.Now().In(c.Location).Format("2006-01-02")
}
