package gormrepo

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// TxManager serializes all game transactions through one mutex on top
// of the database transaction. The timer claim checks rely on command
// and clock paths never interleaving on the same rows.
type TxManager struct {
	db *gorm.DB
	mu *sync.Mutex
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db, mu: &sync.Mutex{}}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
