package repositories

import (
	"context"
	"testing"

	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSlittingRecordConsumesSource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	jobCards := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1"}
	require.NoError(t, jobCards.Create(ctx, &card))

	source := models.StockUnit{Barcode: "551", NetWeight: 500, Available: true, SourceType: models.StockSourceMaterial}
	require.NoError(t, db.Create(&source).Error)

	record := models.SlittingRecord{JobCardID: card.ID, SourceBarcode: "551", InputWeight: 500}
	err := repo.CreateSlittingRecord(ctx, &record, []RollForm{
		{RollNo: 1, NetWeight: 240},
		{RollNo: 2, NetWeight: 250},
	}, 1)
	require.NoError(t, err)

	// The source roll left stock.
	var consumed models.StockUnit
	require.NoError(t, db.Where("barcode = ?", "551").First(&consumed).Error)
	assert.False(t, consumed.Available)
	assert.True(t, consumed.UsedFlag)

	// Output rolls are barcoded and back in stock under the slitting source.
	records, err := repo.SlittingByJobCard(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].TotalRolls)
	assert.Equal(t, 490.0, records[0].TotalNetWeight)
	require.Len(t, records[0].Rolls, 2)
	for _, roll := range records[0].Rolls {
		assert.NotEmpty(t, roll.Barcode)
	}

	var outputs int64
	require.NoError(t, db.Model(&models.StockUnit{}).
		Where("source_type = ? AND available = ?", models.StockSourceSlitting, true).
		Count(&outputs).Error)
	assert.Equal(t, int64(2), outputs)
}

func TestCreateSlittingRecordRejectsConsumedSource(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	source := models.StockUnit{Barcode: "551", Available: false, UsedFlag: true, SourceType: models.StockSourceMaterial}
	require.NoError(t, db.Create(&source).Error)

	record := models.SlittingRecord{JobCardID: 1, SourceBarcode: "551"}
	err := repo.CreateSlittingRecord(ctx, &record, nil, 1)
	assert.ErrorIs(t, err, ErrStockConsumed)
}

func TestDeleteSlittingRecordReversesStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	source := models.StockUnit{Barcode: "551", Available: true, SourceType: models.StockSourceMaterial}
	require.NoError(t, db.Create(&source).Error)

	record := models.SlittingRecord{JobCardID: 1, SourceBarcode: "551"}
	require.NoError(t, repo.CreateSlittingRecord(ctx, &record, []RollForm{
		{RollNo: 1, NetWeight: 240},
	}, 1))

	require.NoError(t, repo.DeleteSlittingRecord(ctx, record.ID, 1))

	// The source is pickable again, the outputs are retired.
	var released models.StockUnit
	require.NoError(t, db.Where("barcode = ?", "551").First(&released).Error)
	assert.True(t, released.Available)

	var liveOutputs int64
	require.NoError(t, db.Model(&models.StockUnit{}).
		Where("source_type = ? AND available = ?", models.StockSourceSlitting, true).
		Count(&liveOutputs).Error)
	assert.Equal(t, int64(0), liveOutputs)
}

func TestDeleteSlittingRollAdjustsRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	record := models.SlittingRecord{JobCardID: 1}
	require.NoError(t, repo.CreateSlittingRecord(ctx, &record, []RollForm{
		{RollNo: 1, NetWeight: 240},
		{RollNo: 2, NetWeight: 250},
	}, 1))

	var roll models.SlittingRoll
	require.NoError(t, db.Where("record_id = ? AND roll_no = ?", record.ID, 1).First(&roll).Error)

	require.NoError(t, repo.DeleteSlittingRoll(ctx, roll.ID, 1))

	var got models.SlittingRecord
	require.NoError(t, db.First(&got, record.ID).Error)
	assert.Equal(t, 1, got.TotalRolls)
	assert.Equal(t, 250.0, got.TotalNetWeight)

	var unit models.StockUnit
	require.NoError(t, db.Where("barcode = ?", roll.Barcode).First(&unit).Error)
	assert.False(t, unit.Available)
}

func TestPrintingRecordTracksPacksOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	record := models.PrintingRecord{JobCardID: 1, Design: "floral", Colours: 3}
	require.NoError(t, repo.CreatePrintingRecord(ctx, &record, []PackForm{
		{PackNo: 1, NetWeight: 40},
		{PackNo: 2, NetWeight: 45},
	}, 1))

	records, err := repo.PrintingByJobCard(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].TotalPacks)
	assert.Equal(t, 85.0, records[0].TotalNetWeight)

	// Printing never touches stock.
	var units int64
	require.NoError(t, db.Model(&models.StockUnit{}).Count(&units).Error)
	assert.Equal(t, int64(0), units)
}

func TestCuttingRecordMirrorsSlitting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageRepository(db)
	ctx := context.Background()

	source := models.StockUnit{Barcode: "601", Available: true, SourceType: models.StockSourceSlitting}
	require.NoError(t, db.Create(&source).Error)

	record := models.CuttingRecord{JobCardID: 1, SourceBarcode: "601", CutSize: 30}
	require.NoError(t, repo.CreateCuttingRecord(ctx, &record, []RollForm{
		{RollNo: 1, NetWeight: 120},
	}, 1))

	var consumed models.StockUnit
	require.NoError(t, db.Where("barcode = ?", "601").First(&consumed).Error)
	assert.False(t, consumed.Available)

	var outputs int64
	require.NoError(t, db.Model(&models.StockUnit{}).
		Where("source_type = ? AND available = ?", models.StockSourceCutting, true).
		Count(&outputs).Error)
	assert.Equal(t, int64(1), outputs)
}
