package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "upkeep/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	Checkout     sharedConfig.CheckoutConfig     `mapstructure:"checkout"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("UPKEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine, env vars and defaults still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.timezone", "UTC")

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "upkeep_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Subscription defaults
	viper.SetDefault("subscription.trial_days", 7)
	viper.SetDefault("subscription.monthly_price_cents", 4900)
	viper.SetDefault("subscription.annual_price_cents", 49900)
	viper.SetDefault("subscription.currency", "USD")

	// Checkout defaults
	viper.SetDefault("checkout.provider", "mock")
	viper.SetDefault("checkout.success_url", "http://localhost:3000/billing/success")
	viper.SetDefault("checkout.cancel_url", "http://localhost:3000/billing/cancelled")
	viper.SetDefault("checkout.callback_url", "http://localhost:8080/api/subscriptions/checkout-callback")
}
