package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"`
	SSLMode     string `mapstructure:"sslmode"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// DSN returns a lib/pq connection string. The password is omitted when
// withPassword is false so the result can be logged.
func (c DatabaseConfig) DSN(withPassword bool) string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", c.Host, c.Port, c.User, c.Name, c.SSLMode)
	if withPassword && c.Password != "" {
		dsn += " password=" + c.Password
	}
	return dsn
}

type JWTConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type ProvidersConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
	Rates   struct {
		BaseURL string `mapstructure:"base_url"`
		AppID   string `mapstructure:"app_id"`
	} `mapstructure:"rates"`
	History struct {
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"history"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT    JWTConfig `mapstructure:"jwt"`
	Cookie struct {
		Secure bool `mapstructure:"secure"`
	} `mapstructure:"cookie"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

var ErrMissingSecret = errors.New("jwt.secret_key must be set")

// LoadConfig reads config.yml from path (if present), a .env file from the
// same directory (if present) and environment overrides such as
// JWT_SECRET_KEY or DATABASE_HOST.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if cfg.JWT.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "forex_dashboard")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)

	// Bound so AutomaticEnv picks up JWT_SECRET_KEY during Unmarshal.
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.ttl", 24*time.Hour)

	v.SetDefault("cookie.secure", false)

	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.rates.base_url", "https://openexchangerates.org/api")
	v.SetDefault("providers.rates.app_id", "")
	v.SetDefault("providers.history.base_url", "https://query1.finance.yahoo.com")
}
