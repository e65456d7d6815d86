package database

import (
	"fmt"
	"github.com/reuben-baek/go-northwind/config"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"strings"
)

// Open connects to the configured database. SQL logs go to the logrus standard logger
// through LogWriter.
func Open(cfg config.Database) (*gorm.DB, error) {
	dialector, err := dialectorOf(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(LogWriter{Logger: logrus.StandardLogger()}, logger.Config{
			SlowThreshold:             cfg.SlowThreshold,
			LogLevel:                  LogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxOpenConns := cfg.MaxOpenConns
	if cfg.Driver == "sqlite" {
		// an in-memory database lives only as long as its connection
		if maxOpenConns == 0 || strings.Contains(cfg.DSN, "memory") {
			maxOpenConns = 1
		}
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	logrus.WithFields(logrus.Fields{"driver": cfg.Driver, "max_open_conns": maxOpenConns}).Debug("database opened")
	return db, nil
}

func dialectorOf(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func LogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
