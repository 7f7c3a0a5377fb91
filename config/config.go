package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// OpenCage geocoding API key.
	OpenCageAPIKey string `mapstructure:"OPENCAGE_API_KEY"`

	// Wizard timing knobs, in milliseconds.
	GeocodeDebounceMS int `mapstructure:"GEOCODE_DEBOUNCE_MS"`
	ResetDelayMS      int `mapstructure:"RESET_DELAY_MS"`

	// Quote session lifetime, in minutes.
	SessionTTLMin int `mapstructure:"SESSION_TTL_MIN"`
}

var AppConfig Config

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
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("OPENCAGE_API_KEY", "")
	viper.SetDefault("GEOCODE_DEBOUNCE_MS", 300)
	viper.SetDefault("RESET_DELAY_MS", 400)
	viper.SetDefault("SESSION_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GeocodeDebounce returns the debounce interval for address suggestion requests.
func GeocodeDebounce() time.Duration {
	return time.Duration(AppConfig.GeocodeDebounceMS) * time.Millisecond
}

// ResetDelay returns the delay applied before a delivery draft is cleared on "back".
func ResetDelay() time.Duration {
	return time.Duration(AppConfig.ResetDelayMS) * time.Millisecond
}

// SessionTTL returns the lifetime of a quote session in the cache.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMin) * time.Minute
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
