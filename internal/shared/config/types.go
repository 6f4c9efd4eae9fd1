package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SubscriptionConfig holds plan pricing and trial parameters.
// Amounts are in the smallest currency unit (cents).
type SubscriptionConfig struct {
	TrialDays         int    `mapstructure:"trial_days"`
	MonthlyPriceCents int64  `mapstructure:"monthly_price_cents"`
	AnnualPriceCents  int64  `mapstructure:"annual_price_cents"`
	Currency          string `mapstructure:"currency"`
}

// CheckoutConfig configures the external checkout collaborator.
type CheckoutConfig struct {
	Provider    string `mapstructure:"provider"`
	SuccessURL  string `mapstructure:"success_url"`
	CancelURL   string `mapstructure:"cancel_url"`
	CallbackURL string `mapstructure:"callback_url"`
}
