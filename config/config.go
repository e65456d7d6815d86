package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"time"
)

const envPrefix = "NORTHWIND"

type Config struct {
	Log      LogConfig `mapstructure:"log"`
	Database Database  `mapstructure:"db"`
	Seed     bool      `mapstructure:"seed"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Database struct {
	Driver        string        `mapstructure:"driver"` // sqlite or postgres
	DSN           string        `mapstructure:"dsn"`
	LogLevel      string        `mapstructure:"log_level"` // silent, error, warn, info
	SlowThreshold time.Duration `mapstructure:"slow_threshold"`
	MaxOpenConns  int           `mapstructure:"max_open_conns"`
}

// Load reads the config file at path when path is not empty, then NORTHWIND_* env vars.
// Env vars win over the file; e.g. NORTHWIND_DB_DRIVER sets db.driver.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "file:northwind?mode=memory&cache=shared&_foreign_keys=on")
	v.SetDefault("db.log_level", "warn")
	v.SetDefault("db.slow_threshold", 200*time.Millisecond)
	v.SetDefault("db.max_open_conns", 0)
	v.SetDefault("seed", false)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("db.dsn is empty")
	}
	return nil
}
