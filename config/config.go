package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	BotToken      string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	AdminChatID   int64  `mapstructure:"ADMIN_CHAT_ID"`
	SessionDBPath string `mapstructure:"SESSION_DB_PATH"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	Currency      string `mapstructure:"CURRENCY"`
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("ADMIN_CHAT_ID", 0)
	viper.SetDefault("SESSION_DB_PATH", "parking-bot.db")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CURRENCY", "RWF")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return &cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
