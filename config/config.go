package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type SessionConfig struct {
	TTLHours      int
	RedisAddr     string
	RedisPassword string
}

type SeedConfig struct {
	AdminUsername    string
	AdminPassword    string
	AdminDisplayName string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Msg(".env file not found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT") // Render-style fallback
	viper.BindEnv("DATABASE_URL")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SESSION_TTL_HOURS", 24)

	AppConfig = &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Session: SessionConfig{
			TTLHours:      viper.GetInt("SESSION_TTL_HOURS"),
			RedisAddr:     viper.GetString("REDIS_ADDR"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
		},
		Seed: SeedConfig{
			AdminUsername:    viper.GetString("SEED_ADMIN_USERNAME"),
			AdminPassword:    viper.GetString("SEED_ADMIN_PASSWORD"),
			AdminDisplayName: viper.GetString("SEED_ADMIN_DISPLAY_NAME"),
		},
	}

	log.Info().
		Str("port", AppConfig.Server.Port).
		Str("env", AppConfig.Server.Env).
		Bool("database_url_set", AppConfig.Database.URL != "").
		Bool("redis_sessions", AppConfig.Session.RedisAddr != "").
		Msg("Configuration loaded")
}
