package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisConvoDB  int    `mapstructure:"REDIS_CONVO_DB"`

	// Dialogue engine configuration. ENGINE_KIND selects the backend:
	// "assistant" for the hosted assistant HTTP API, "gemini" for Gemini.
	EngineKind          string `mapstructure:"ENGINE_KIND"`
	AssistantURL        string `mapstructure:"ASSISTANT_URL"`
	AssistantAPIKey     string `mapstructure:"ASSISTANT_API_KEY"`
	AssistantEnvID      string `mapstructure:"ASSISTANT_ENV_ID"`
	AssistantAPIVersion string `mapstructure:"ASSISTANT_API_VERSION"`
	GeminiAPIKey        string `mapstructure:"GEMINI_API_KEY"`

	// Document store collections.
	PropertiesCollection string `mapstructure:"PROPERTIES_COLLECTION"`
	ToursCollection      string `mapstructure:"TOURS_COLLECTION"`

	// Frontend route the search redirect builder points at.
	ListingBrowserRoute string `mapstructure:"LISTING_BROWSER_ROUTE"`
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
	viper.SetDefault("REDIS_CONVO_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "realtorbot")
	viper.SetDefault("ENGINE_KIND", "assistant")
	viper.SetDefault("ASSISTANT_API_VERSION", "2021-11-27")
	viper.SetDefault("PROPERTIES_COLLECTION", "properties")
	viper.SetDefault("TOURS_COLLECTION", "tours")
	viper.SetDefault("LISTING_BROWSER_ROUTE", "/listings")

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
