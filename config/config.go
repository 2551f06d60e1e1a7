package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseHost     string `mapstructure:"database_host"`
	DatabaseUser     string `mapstructure:"database_user"`
	DatabasePassword string `mapstructure:"database_password"`
	DatabaseName     string `mapstructure:"database_name"`
	TestDatabaseName string `mapstructure:"test_database_name"`
	IsProduction     bool   `mapstructure:"is_production"`
	BotToken         string `mapstructure:"bot_token"`
	AppID            string `mapstructure:"app_id"`
	GuildID          string `mapstructure:"guild_id"`
	WebsiteURL       string `mapstructure:"website_url"`
	ListenAddr       string `mapstructure:"listen_addr"`
}

// ActiveDatabase returns the production database name, or the test one
// when is_production is unset.
func (c *Config) ActiveDatabase() string {
	if c.IsProduction {
		return c.DatabaseName
	}
	return c.TestDatabaseName
}

func InitConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("Error: config file is not found: %w", err)
		}
		return nil, fmt.Errorf("Error: init config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Error: unable to decode config into struct: %w", err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	return &cfg, nil
}
