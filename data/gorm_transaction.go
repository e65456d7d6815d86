package data

import (
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type GormTransactionManager struct {
	db *gorm.DB
}

func NewGormTransactionManager(db *gorm.DB) *GormTransactionManager {
	return &GormTransactionManager{db: db}
}

type gormTransactionKey struct{}

// Do runs f inside a transaction. Repositories called with the ctx passed to f
// share the transaction. It commits when f returns nil and rolls back otherwise,
// including when f panics.
func (g *GormTransactionManager) Do(ctx context.Context, f func(ctx context.Context) error) error {
	if _, ok := ctx.Value(gormTransactionKey{}).(*gorm.DB); ok {
		// already in a transaction, join it
		return f(ctx)
	}

	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	newCtx := context.WithValue(ctx, gormTransactionKey{}, tx)

	panicked := true
	defer func() {
		if panicked {
			logrus.Warnf("GormTransactionManager.Do: rollback on panic")
			tx.Rollback()
		}
	}()

	err := f(newCtx)
	panicked = false // if f is panicked, this statement is not executed.

	if err != nil {
		logrus.Debugf("GormTransactionManager.Do: rollback - %v", err)
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormTransactionManager) Get(ctx context.Context) any {
	return g.session(ctx)
}

func (g *GormTransactionManager) session(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(gormTransactionKey{}).(*gorm.DB)
	if !ok {
		logrus.Tracef("GormTransactionManager.Get: no transaction session")
		return g.db.WithContext(ctx)
	}
	return tx
}
