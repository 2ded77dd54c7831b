package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Order placement.
	TableNumber  int    `mapstructure:"TABLE_NUMBER"`
	OrderAPIBase string `mapstructure:"ORDER_API_BASE"`

	// UPI payment artifact.
	UPIID     string `mapstructure:"UPI_ID"`
	PayeeName string `mapstructure:"PAYEE_NAME"`

	// Google Cloud Speech credentials file.
	SpeechCredentialsFile string `mapstructure:"SPEECH_CREDENTIALS_FILE"`
	SpeechLanguage        string `mapstructure:"SPEECH_LANGUAGE"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("TABLE_NUMBER", 1)
	viper.SetDefault("ORDER_API_BASE", "http://127.0.0.1:8080")
	viper.SetDefault("UPI_ID", "9025370065@ybl")
	viper.SetDefault("PAYEE_NAME", "KOVAI KULAMBI")
	viper.SetDefault("SPEECH_CREDENTIALS_FILE", "")
	viper.SetDefault("SPEECH_LANGUAGE", "en-IN")

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
