package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function inside a single database transaction. The
// services own the transaction boundary; repositories only ever see the
// *gorm.DB handed to them.
type TxManager interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db}
}

func (m *gormTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
