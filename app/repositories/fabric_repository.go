package repositories

import (
	"context"
	"errors"

	"github.com/karavella/fabric-catalog/app/models"
	"gorm.io/gorm"
)

type FabricRepositoryImpl interface {
	GetFabrics(ctx context.Context) ([]models.Fabric, error)
	GetByID(ctx context.Context, id uint) (*models.Fabric, error)
	CreateFabricTx(ctx context.Context, tx *gorm.DB, fabric *models.Fabric) error
	UpdateColumnsTx(ctx context.Context, tx *gorm.DB, id uint, columns map[string]interface{}) error
	DeleteFabric(ctx context.Context, id uint) (int64, error)
}

type fabricRepository struct {
	db *gorm.DB
}

func NewFabricRepository(db *gorm.DB) FabricRepositoryImpl {
	return &fabricRepository{db}
}

// GetFabrics returns the whole catalog, newest design first, with each
// fabric's variants attached in variant-code order.
func (f *fabricRepository) GetFabrics(ctx context.Context) ([]models.Fabric, error) {
	var fabrics []models.Fabric
	err := f.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("variant_code ASC")
		}).
		Order("created_at DESC").
		Find(&fabrics).Error
	if err != nil {
		return nil, err
	}
	return fabrics, nil
}

// GetByID returns (nil, nil) when the fabric does not exist. Callers use
// this to pre-fill edit forms, so a missing row is not an error.
func (f *fabricRepository) GetByID(ctx context.Context, id uint) (*models.Fabric, error) {
	var fabric models.Fabric
	err := f.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&fabric).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fabric, nil
}

func (f *fabricRepository) CreateFabricTx(ctx context.Context, tx *gorm.DB, fabric *models.Fabric) error {
	return tx.WithContext(ctx).Create(fabric).Error
}

func (f *fabricRepository) UpdateColumnsTx(ctx context.Context, tx *gorm.DB, id uint, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Model(&models.Fabric{}).
		Where("id = ?", id).
		Updates(columns).Error
}

// DeleteFabric removes the fabric row; the variants go with it through
// the ON DELETE CASCADE constraint. Returns the number of fabric rows
// removed so callers can tell a missing id apart from a real delete.
func (f *fabricRepository) DeleteFabric(ctx context.Context, id uint) (int64, error) {
	result := f.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Fabric{})
	return result.RowsAffected, result.Error
}
