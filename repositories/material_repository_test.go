package repositories

import (
	"context"
	"strconv"
	"testing"

	"packflow/config"
	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	supplier := seedSupplier(t, db)

	forms := []MaterialItemForm{
		{ReelNo: 7, ParticularID: 1, Gsm: 80, Size: 120, NetWeight: 500, GrossWeight: 510},
		{ReelNo: 8, ParticularID: 1, Gsm: 80, Size: 120, NetWeight: 450, GrossWeight: 460},
	}

	batch, err := repo.CreateBatch(ctx, supplier.ID, forms, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, batch.TotalReels)
	assert.Equal(t, 950.0, batch.TotalNetWeight)
	assert.Equal(t, 970.0, batch.TotalGrossWeight)

	var items []models.MaterialItem
	require.NoError(t, db.Where("batch_id = ?", batch.ID).Find(&items).Error)
	require.Len(t, items, 2)
	for _, item := range items {
		expected := strconv.FormatUint(uint64(item.ID), 10) + strconv.Itoa(item.ReelNo)
		assert.Equal(t, expected, item.Barcode)
	}

	var units int64
	require.NoError(t, db.Model(&models.StockUnit{}).
		Where("source_type = ? AND available = ?", models.StockSourceMaterial, true).
		Count(&units).Error)
	assert.Equal(t, int64(2), units)
}

func TestCreateBatchUnknownSupplier(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)

	_, err := repo.CreateBatch(context.Background(), 999, []MaterialItemForm{
		{ReelNo: 1, ParticularID: 1, NetWeight: 100, GrossWeight: 110},
	}, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemStaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()

	item, err := repo.AddItem(ctx, nil, MaterialItemForm{
		ReelNo: 3, ParticularID: 1, NetWeight: 200, GrossWeight: 210,
	}, 1)
	require.NoError(t, err)

	assert.Nil(t, item.BatchID)
	assert.NotEmpty(t, item.Barcode)

	// Staged reels are not in stock until a batch claims them.
	var units int64
	require.NoError(t, db.Model(&models.StockUnit{}).Count(&units).Error)
	assert.Equal(t, int64(0), units)

	staged, err := repo.UnassignedItems(ctx)
	require.NoError(t, err)
	assert.Len(t, staged, 1)
}

func TestDeleteItemAdjustsTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	supplier := seedSupplier(t, db)

	batch, err := repo.CreateBatch(ctx, supplier.ID, []MaterialItemForm{
		{ReelNo: 1, ParticularID: 1, NetWeight: 500, GrossWeight: 510},
		{ReelNo: 2, ParticularID: 1, NetWeight: 450, GrossWeight: 460},
	}, 1)
	require.NoError(t, err)

	var item models.MaterialItem
	require.NoError(t, db.Where("batch_id = ? AND reel_no = ?", batch.ID, 2).First(&item).Error)

	require.NoError(t, repo.DeleteItem(ctx, item.ID, 1))

	got, err := repo.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalReels)
	assert.Equal(t, 500.0, got.TotalNetWeight)
	assert.Len(t, got.Items, 1)

	var unit models.StockUnit
	require.NoError(t, db.Where("barcode = ?", item.Barcode).First(&unit).Error)
	assert.False(t, unit.Available)
}

func TestFinalizeBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	supplier := seedSupplier(t, db)

	a, err := repo.AddItem(ctx, nil, MaterialItemForm{ReelNo: 1, ParticularID: 1, NetWeight: 100, GrossWeight: 110}, 1)
	require.NoError(t, err)
	b, err := repo.AddItem(ctx, nil, MaterialItemForm{ReelNo: 2, ParticularID: 1, NetWeight: 200, GrossWeight: 210}, 1)
	require.NoError(t, err)

	batch, err := repo.FinalizeBatch(ctx, []uint{a.ID, b.ID}, supplier.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, batch.TotalReels)
	assert.Equal(t, 300.0, batch.TotalNetWeight)
	assert.Len(t, batch.Items, 2)

	staged, err := repo.UnassignedItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)

	// The same reels cannot be grouped twice.
	_, err = repo.FinalizeBatch(ctx, []uint{a.ID, b.ID}, supplier.ID, 1)
	assert.ErrorIs(t, err, ErrNoneMatched)
}

func TestFinalizeBatchPartialMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	supplier := seedSupplier(t, db)

	a, err := repo.AddItem(ctx, nil, MaterialItemForm{ReelNo: 1, ParticularID: 1, NetWeight: 100, GrossWeight: 110}, 1)
	require.NoError(t, err)

	prev := config.FinalizeStrict
	defer func() { config.FinalizeStrict = prev }()

	config.FinalizeStrict = true
	_, err = repo.FinalizeBatch(ctx, []uint{a.ID, 9999}, supplier.ID, 1)
	assert.ErrorIs(t, err, ErrPartialMatch)

	config.FinalizeStrict = false
	batch, err := repo.FinalizeBatch(ctx, []uint{a.ID, 9999}, supplier.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, batch.TotalReels)

	var warnings int64
	require.NoError(t, db.Model(&models.TransactionHistory{}).
		Where("status = ?", "warning").Count(&warnings).Error)
	assert.Equal(t, int64(1), warnings)
}

func TestRecomputeBatchTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMaterialRepository(db)
	ctx := context.Background()
	supplier := seedSupplier(t, db)

	batch, err := repo.CreateBatch(ctx, supplier.ID, []MaterialItemForm{
		{ReelNo: 1, ParticularID: 1, NetWeight: 100, GrossWeight: 110},
		{ReelNo: 2, ParticularID: 1, NetWeight: 200, GrossWeight: 210},
	}, 1)
	require.NoError(t, err)

	// Simulate drift.
	require.NoError(t, db.Model(&models.MaterialBatch{}).Where("id = ?", batch.ID).
		Updates(map[string]interface{}{"total_reels": 99, "total_net_weight": 0}).Error)

	repaired, err := repo.RecomputeBatchTotals(ctx, batch.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repaired.TotalReels)
	assert.Equal(t, 300.0, repaired.TotalNetWeight)
	assert.Equal(t, 320.0, repaired.TotalGrossWeight)
}
