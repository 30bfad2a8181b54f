package repositories

import (
	"context"
	"fmt"
	"testing"

	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobCardAssignsNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1,3"}
	require.NoError(t, repo.Create(ctx, &card))

	assert.NotZero(t, card.ID)
	assert.Equal(t, fmt.Sprintf("JC-%d", card.ID), card.JobCardNo)

	// An explicit number is kept.
	custom := models.JobCard{JobCardNo: "JC-CUSTOM", CustomerID: 1, ParticularID: 1, Stages: "2"}
	require.NoError(t, repo.Create(ctx, &custom))
	assert.Equal(t, "JC-CUSTOM", custom.JobCardNo)
}

func TestHasStage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1,3"}
	require.NoError(t, repo.Create(ctx, &card))

	has, err := repo.HasStage(ctx, card.ID, models.StageSlitting)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasStage(ctx, card.ID, models.StagePrinting)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = repo.HasStage(ctx, 99999, models.StageSlitting)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteStage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1,3"}
	require.NoError(t, repo.Create(ctx, &card))

	require.NoError(t, repo.CompleteStage(ctx, card.ID, models.StageSlitting, 1))

	got, err := repo.Get(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, got.SlittingDone)
	assert.False(t, got.CuttingDone)

	// Completing a stage the card does not carry is rejected.
	err = repo.CompleteStage(ctx, card.ID, models.StagePrinting, 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStageAvailability(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1,2,3"}
	require.NoError(t, repo.Create(ctx, &card))

	avail := repo.Availability(ctx, card.ID)
	assert.False(t, avail.Slitting)
	assert.False(t, avail.Printing)
	assert.False(t, avail.Cutting)

	require.NoError(t, db.Create(&models.SlittingRecord{JobCardID: card.ID}).Error)
	require.NoError(t, db.Create(&models.CuttingRecord{JobCardID: card.ID}).Error)

	avail = repo.Availability(ctx, card.ID)
	assert.True(t, avail.Slitting)
	assert.False(t, avail.Printing)
	assert.True(t, avail.Cutting)
}

func TestDeleteJobCard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobCardRepository(db)
	ctx := context.Background()

	card := models.JobCard{CustomerID: 1, ParticularID: 1, Stages: "1"}
	require.NoError(t, repo.Create(ctx, &card))

	require.NoError(t, repo.Delete(ctx, card.ID, 7))

	_, err := repo.Get(ctx, card.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
