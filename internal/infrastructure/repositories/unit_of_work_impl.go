package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	domainrepos "octofit.backend/internal/domain/repositories"
)

type txContextKey struct{}

var txKey = txContextKey{}

var commitTx = func(tx *gorm.DB) error { return tx.Commit().Error }

// UnitOfWorkImpl carries a GORM transaction through the context so every
// repository called inside Do shares it.
type UnitOfWorkImpl struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

func NewUnitOfWork(db *gorm.DB) domainrepos.UnitOfWork {
	return &UnitOfWorkImpl{db: db}
}

// NewSnapshotUnitOfWork is for runs whose reads must all see one state of
// the database. Postgres defaults to READ COMMITTED, so its transactions are
// opened REPEATABLE READ; SQLite transactions are serializable already.
func NewSnapshotUnitOfWork(db *gorm.DB) domainrepos.UnitOfWork {
	u := &UnitOfWorkImpl{db: db}
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		u.opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
	}
	return u
}

// Do runs fn in a transaction. A ctx that already carries one is passed
// through unchanged so the outermost Do decides commit or rollback. A panic
// in fn rolls back before propagating.
func (u *UnitOfWorkImpl) Do(ctx context.Context, fn domainrepos.TxFunc) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	tx := u.db.WithContext(ctx).Begin(u.opts)
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		tx.Rollback()
		return err
	}
	if err := commitTx(tx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetDB returns the transaction carried by ctx, or the base DB.
func (u *UnitOfWorkImpl) GetDB(ctx context.Context) *gorm.DB {
	return GetDB(ctx, u.db)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(*gorm.DB)
	return ok
}

// GetDB resolves the handle a repository should use: the transaction in ctx
// when there is one, else fallback bound to ctx.
func GetDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
