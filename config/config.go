package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Offers OffersConfig `mapstructure:"offers"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type AuthConfig struct {
	JWTSecret   string `mapstructure:"jwt_secret"`
	AdminAPIKey string `mapstructure:"admin_api_key"`
}

type OffersConfig struct {
	// ClampAtZero floors a discounted payment amount at zero. Off by
	// default: the legacy behavior lets a large offer drive the amount
	// negative, and turning the clamp on changes observable totals.
	ClampAtZero bool `mapstructure:"clamp_at_zero"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7000)
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "duzol")
	v.SetDefault("offers.clamp_at_zero", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")

	// Secrets come from the environment, never the yaml file.
	_ = v.BindEnv("auth.jwt_secret", "APP_SECRET")
	_ = v.BindEnv("auth.admin_api_key", "ADMIN_API_KEY")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")
	_ = v.BindEnv("server.port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
