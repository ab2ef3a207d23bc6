package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Scheduling configuration. All instants are interpreted in the single
	// reference timezone; no multi-zone conversion is performed.
	ReferenceTimezone   string `mapstructure:"REFERENCE_TIMEZONE"`
	BookingHorizonDays  int    `mapstructure:"BOOKING_HORIZON_DAYS"`
	SessionTTLMinutes   int    `mapstructure:"SESSION_TTL_MINUTES"`
	ReminderLeadMinutes int    `mapstructure:"REMINDER_LEAD_MINUTES"`
}

var AppConfig Config

// referenceLocation is resolved once from REFERENCE_TIMEZONE.
var referenceLocation *time.Location

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "slotwise")
	viper.SetDefault("REFERENCE_TIMEZONE", "Local")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 30)
	viper.SetDefault("SESSION_TTL_MINUTES", 10)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(AppConfig.ReferenceTimezone)
	if err != nil {
		log.Fatalf("Invalid REFERENCE_TIMEZONE %q: %v", AppConfig.ReferenceTimezone, err)
	}
	referenceLocation = loc
}

// ReferenceLocation returns the single timezone all stored instants are
// interpreted in.
func ReferenceLocation() *time.Location {
	if referenceLocation == nil {
		return time.Local
	}
	return referenceLocation
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
