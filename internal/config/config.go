package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/joestump/news-api/internal/query"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver       string
		DSN          string
		MaxOpenConns int
	}
	Log struct {
		Level  string
		Format string
	}
	Query query.Defaults
}

var drivers = map[string]bool{"sqlite3": true, "postgres": true, "mysql": true}

// Load reads config from environment (NEWS_ prefix), an optional .env file
// and an optional news-api.yaml in the working directory. Environment wins
// over the file.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional .env; existing env vars are not overridden

	v := viper.New()
	v.SetEnvPrefix("NEWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("news-api")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read news-api.yaml: %w", err)
		}
	}

	v.SetDefault("http.addr", ":9090")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "news.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("query.default_limit", query.StandardDefaults.Limit)
	v.SetDefault("query.default_sort_by", query.StandardDefaults.SortBy)
	v.SetDefault("query.default_order", query.StandardDefaults.Order)
	v.SetDefault("query.max_limit", 0)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.DB.MaxOpenConns = v.GetInt("db.max_open_conns")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Query = query.Defaults{
		SortBy:   v.GetString("query.default_sort_by"),
		Order:    v.GetString("query.default_order"),
		Limit:    v.GetInt("query.default_limit"),
		MaxLimit: v.GetInt("query.max_limit"),
	}

	if !drivers[cfg.DB.Driver] {
		return nil, fmt.Errorf("NEWS_DB_DRIVER %q is not one of sqlite3, postgres, mysql", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("NEWS_DB_DSN is required")
	}
	if cfg.DB.MaxOpenConns < 0 {
		return nil, fmt.Errorf("NEWS_DB_MAX_OPEN_CONNS must not be negative")
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid NEWS_LOG_LEVEL: %w", err)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "console" {
		return nil, fmt.Errorf("NEWS_LOG_FORMAT %q is not json or console", cfg.Log.Format)
	}
	if _, err := query.NewValidator(cfg.Query); err != nil {
		return nil, fmt.Errorf("invalid query defaults: %w", err)
	}

	return cfg, nil
}
