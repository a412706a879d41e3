package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestGetFabrics_NewestFirstWithOrderedVariants(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFabricRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `fabrics`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "name", "created_at"}).
			AddRow(2, "FAB-002", "Harbor Twill", now).
			AddRow(1, "FAB-001", "Moss Tulle", now.Add(-time.Hour)))
	mock.ExpectQuery("SELECT \\* FROM `variants`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fabric_id", "variant_code", "variant_name"}).
			AddRow(10, 2, "ECR01", "Ecru").
			AddRow(11, 2, "NAVY01", "Navy").
			AddRow(12, 1, "MOSS01", "Moss"))

	fabrics, err := repo.GetFabrics(context.Background())

	require.NoError(t, err)
	require.Len(t, fabrics, 2)
	assert.Equal(t, "Harbor Twill", fabrics[0].Name)
	require.Len(t, fabrics[0].Variants, 2)
	assert.Equal(t, "ECR01", fabrics[0].Variants[0].VariantCode)
	require.Len(t, fabrics[1].Variants, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_MissingFabricIsNotAnError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFabricRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `fabrics`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	fabric, err := repo.GetByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, fabric)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_LoadsVariants(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFabricRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `fabrics`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "external_id", "name"}).
			AddRow(7, "FAB-007", "Harbor Twill"))
	mock.ExpectQuery("SELECT \\* FROM `variants`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fabric_id", "variant_code"}).
			AddRow(1, 7, "NAVY01"))

	fabric, err := repo.GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, fabric)
	assert.Equal(t, uint(7), fabric.ID)
	require.Len(t, fabric.Variants, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFabric_ReportsRowsAffected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFabricRepository(db)

	mock.ExpectExec("DELETE FROM `fabrics`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteFabric(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFabric_MissingRow(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewFabricRepository(db)

	mock.ExpectExec("DELETE FROM `fabrics`").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.DeleteFabric(context.Background(), 99)

	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
