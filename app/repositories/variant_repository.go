package repositories

import (
	"context"

	"github.com/karavella/fabric-catalog/app/models"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	InsertTx(ctx context.Context, tx *gorm.DB, variant *models.Variant) error
	UpdateTx(ctx context.Context, tx *gorm.DB, fabricID, id uint, columns map[string]interface{}) error
	DeleteByIDsTx(ctx context.Context, tx *gorm.DB, fabricID uint, ids []uint) error
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

func (v *variantRepository) InsertTx(ctx context.Context, tx *gorm.DB, variant *models.Variant) error {
	return tx.WithContext(ctx).Create(variant).Error
}

// UpdateTx scopes the update to the fabric, like DeleteByIDsTx, so a
// stale id from another fabric's form can never touch foreign rows.
func (v *variantRepository) UpdateTx(ctx context.Context, tx *gorm.DB, fabricID, id uint, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Model(&models.Variant{}).
		Where("fabric_id = ? AND id = ?", fabricID, id).
		Updates(columns).Error
}

// DeleteByIDsTx scopes the delete to the fabric so a stale id from
// another fabric's form can never remove foreign rows.
func (v *variantRepository) DeleteByIDsTx(ctx context.Context, tx *gorm.DB, fabricID uint, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Where("fabric_id = ? AND id IN ?", fabricID, ids).
		Delete(&models.Variant{}).Error
}
