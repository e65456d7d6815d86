package main

import (
	"context"
	"github.com/joho/godotenv"
	"github.com/reuben-baek/go-northwind/config"
	"github.com/reuben-baek/go-northwind/data"
	"github.com/reuben-baek/go-northwind/database"
	"github.com/reuben-baek/go-northwind/infra"
	"github.com/sirupsen/logrus"
	"os"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("load .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("NORTHWIND_CONFIG"))
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, keeping %s", cfg.Log.Level, logrus.GetLevel())
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}
	logrus.WithField("driver", cfg.Database.Driver).Info("schema migrated")

	if !cfg.Seed {
		return
	}
	transactionManager := data.NewGormTransactionManager(db)
	if err := seed(context.Background(), transactionManager, infra.NewRepositories(transactionManager)); err != nil {
		logrus.Fatalf("seed: %v", err)
	}
}
