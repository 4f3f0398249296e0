package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`

	// Google sign-in widget client ID (audience of the widget credential).
	GoogleClientID string `mapstructure:"GOOGLE_CLIENT_ID"`

	// Remote marketplace API endpoints.
	CreateUserURL      string `mapstructure:"CREATE_USER_URL"`
	FetchUserURL       string `mapstructure:"FETCH_USER_URL"`
	ServiceProviderURL string `mapstructure:"SERVICE_PROVIDER_URL"`
	BookingURL         string `mapstructure:"BOOKING_URL"`
	MyServicesURL      string `mapstructure:"MY_SERVICES_URL"`

	// External chat backend and public IP lookup.
	ChatURL     string `mapstructure:"CHAT_URL"`
	IPLookupURL string `mapstructure:"IP_LOOKUP_URL"`

	// Directory holding content fixture files (catalog, jobs, testimonials, faqs).
	ContentDir string `mapstructure:"CONTENT_DIR"`
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
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("CHAT_URL", "http://localhost:8000/chat")
	viper.SetDefault("IP_LOOKUP_URL", "https://api.ipify.org?format=json")
	viper.SetDefault("CONTENT_DIR", "content")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
