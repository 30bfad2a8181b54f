package repositories

import (
	"context"
	"testing"

	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeAndRestore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	unit := models.StockUnit{
		Barcode:    "421",
		NetWeight:  500,
		Available:  true,
		SourceType: models.StockSourceMaterial,
	}
	require.NoError(t, db.Create(&unit).Error)

	consumed, err := repo.Consume(ctx, "421", 1)
	require.NoError(t, err)
	assert.False(t, consumed.Available)
	assert.True(t, consumed.UsedFlag)

	// Double consumption is a conflict.
	_, err = repo.Consume(ctx, "421", 1)
	assert.ErrorIs(t, err, ErrStockConsumed)

	restored, err := repo.Restore(ctx, "421", 1)
	require.NoError(t, err)
	assert.True(t, restored.Available)

	// UsedFlag stays set after restore as the audit marker.
	var reread models.StockUnit
	require.NoError(t, db.Where("barcode = ?", "421").First(&reread).Error)
	assert.True(t, reread.UsedFlag)

	_, err = repo.Consume(ctx, "421", 1)
	require.NoError(t, err)
}

func TestGetByBarcodeValidation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	_, err := repo.GetByBarcode(ctx, "ABC123")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.GetByBarcode(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.GetByBarcode(ctx, "123456")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAvailableFiltersBySource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStockRepository(db)
	ctx := context.Background()

	units := []models.StockUnit{
		{Barcode: "11", Available: true, SourceType: models.StockSourceMaterial},
		{Barcode: "12", Available: true, SourceType: models.StockSourceSlitting},
		{Barcode: "13", Available: false, SourceType: models.StockSourceSlitting},
	}
	for i := range units {
		require.NoError(t, db.Create(&units[i]).Error)
	}

	all, err := repo.ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	slit, err := repo.ListAvailable(ctx, models.StockSourceSlitting)
	require.NoError(t, err)
	require.Len(t, slit, 1)
	assert.Equal(t, "12", slit[0].Barcode)
}
