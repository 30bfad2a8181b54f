package repositories

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"packflow/config"
	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompleteItemStaging(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBundleRepository(db)
	ctx := context.Background()

	item, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{
		BundleType: "25kg", Weight: 25, Bags: 1, Complete: true,
	}, 1)
	require.NoError(t, err)

	assert.Nil(t, item.BundleID)
	assert.True(t, item.InStock)

	// Barcode is the primary key followed by the 12-digit timestamp.
	prefix := strconv.FormatUint(uint64(item.ID), 10)
	require.True(t, strings.HasPrefix(item.Barcode, prefix))
	assert.Len(t, item.Barcode, len(prefix)+12)
}

func TestFinalizeBundleRollsUpWastage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBundleRepository(db)
	jobCards := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1,3"}
	require.NoError(t, jobCards.Create(ctx, &card))

	require.NoError(t, db.Create(&models.SlittingRecord{JobCardID: card.ID, Wastage: 2.5}).Error)
	require.NoError(t, db.Create(&models.CuttingRecord{JobCardID: card.ID, Wastage: 1.5}).Error)

	a, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "25kg", Weight: 25, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)
	b, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "10kg", Weight: 10, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)

	bundle, err := repo.FinalizeBundle(ctx, []uint{a.ID, b.ID}, card.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 35.0, bundle.TotalWeight)
	assert.Equal(t, 2, bundle.TotalBags)
	assert.Equal(t, 4.0, bundle.TotalWastage)
	assert.Len(t, bundle.CompleteItems, 2)

	staged, err := repo.UnassignedCompleteItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)

	_, err = repo.FinalizeBundle(ctx, []uint{a.ID, b.ID}, card.ID, 1)
	assert.ErrorIs(t, err, ErrNoneMatched)
}

func TestFinalizeBundlePartialMatchStrict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBundleRepository(db)
	jobCards := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1"}
	require.NoError(t, jobCards.Create(ctx, &card))

	a, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "25kg", Weight: 25, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)

	prev := config.FinalizeStrict
	defer func() { config.FinalizeStrict = prev }()

	config.FinalizeStrict = true
	_, err = repo.FinalizeBundle(ctx, []uint{a.ID, 9999}, card.ID, 1)
	assert.ErrorIs(t, err, ErrPartialMatch)
}

func TestDeleteCompleteItemAdjustsBundle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBundleRepository(db)
	jobCards := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1"}
	require.NoError(t, jobCards.Create(ctx, &card))

	a, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "25kg", Weight: 25, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)
	b, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "25kg", Weight: 25, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)

	bundle, err := repo.FinalizeBundle(ctx, []uint{a.ID, b.ID}, card.ID, 1)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteCompleteItem(ctx, a.ID, 1))

	got, err := repo.GetBundle(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.TotalWeight)
	assert.Equal(t, 1, got.TotalBags)
}

func TestRecomputeBundleTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBundleRepository(db)
	jobCards := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1"}
	require.NoError(t, jobCards.Create(ctx, &card))

	a, err := repo.CreateCompleteItem(ctx, nil, BundleItemForm{BundleType: "25kg", Weight: 25, Bags: 1, Complete: true}, 1)
	require.NoError(t, err)

	bundle, err := repo.FinalizeBundle(ctx, []uint{a.ID}, card.ID, 1)
	require.NoError(t, err)

	// A non-complete item inside the bundle also counts toward totals.
	_, err = repo.CreateNonCompleteItem(ctx, &bundle.ID, BundleItemForm{BundleType: "loose", Weight: 5, Bags: 1}, 1)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Bundle{}).Where("id = ?", bundle.ID).
		Updates(map[string]interface{}{"total_weight": 0, "total_bags": 0}).Error)

	repaired, err := repo.RecomputeBundleTotals(ctx, bundle.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, repaired.TotalWeight)
	assert.Equal(t, 2, repaired.TotalBags)
}
