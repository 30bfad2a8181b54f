package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"packflow/models"
	"packflow/types"

	"gorm.io/gorm"
)

type JobCardRepository struct {
	db *gorm.DB
}

func NewJobCardRepository(db *gorm.DB) *JobCardRepository {
	return &JobCardRepository{db: db}
}

// StageAvailability reports which stage records exist for a job card, used
// for the jump-to-stage links. The three probes run concurrently; a probe
// failure counts as "stage absent" and is never surfaced as an error.
type StageAvailability struct {
	Slitting bool `json:"slitting"`
	Printing bool `json:"printing"`
	Cutting  bool `json:"cutting"`
}

func (r *JobCardRepository) Create(ctx context.Context, card *models.JobCard) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(card).Error; err != nil {
			return err
		}
		if card.JobCardNo == "" {
			card.JobCardNo = fmt.Sprintf("JC-%d", card.ID)
			if err := tx.Model(&models.JobCard{}).Where("id = ?", card.ID).
				Update("job_card_no", card.JobCardNo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *JobCardRepository) Get(ctx context.Context, id types.SnowflakeID) (*models.JobCard, error) {
	var card models.JobCard
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job card %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &card, nil
}

func (r *JobCardRepository) List(ctx context.Context) ([]models.JobCard, error) {
	var cards []models.JobCard
	if err := r.db.WithContext(ctx).Order("id desc").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// HasStage reports whether the job card belongs to the given stage tag.
// Membership is boundary aware over the delimited stage list.
func (r *JobCardRepository) HasStage(ctx context.Context, id types.SnowflakeID, tag string) (bool, error) {
	card, err := r.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return card.Stages.Has(tag), nil
}

// CompleteStage sets the per-stage done flag. The stage stays in the
// membership list.
func (r *JobCardRepository) CompleteStage(ctx context.Context, id types.SnowflakeID, tag string, actor int) error {
	card, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if !card.Stages.Has(tag) {
		return fmt.Errorf("job card %d has no stage %s: %w", id, tag, ErrValidation)
	}

	var column string
	switch tag {
	case models.StageSlitting:
		column = "slitting_done"
	case models.StagePrinting:
		column = "printing_done"
	case models.StageCutting:
		column = "cutting_done"
	default:
		return fmt.Errorf("unknown stage tag %s: %w", tag, ErrValidation)
	}

	return r.db.WithContext(ctx).Model(&models.JobCard{}).Where("id = ?", id).
		Updates(map[string]interface{}{column: true, "updated_by": actor}).Error
}

// Availability probes the three stage tables for the job card concurrently.
func (r *JobCardRepository) Availability(ctx context.Context, id types.SnowflakeID) StageAvailability {
	var avail StageAvailability
	var wg sync.WaitGroup

	probe := func(model interface{}, out *bool) {
		defer wg.Done()
		var count int64
		if err := r.db.WithContext(ctx).Model(model).Where("job_card_id = ?", id).Count(&count).Error; err != nil {
			// A failed probe reads as stage absent.
			return
		}
		*out = count > 0
	}

	wg.Add(3)
	go probe(&models.SlittingRecord{}, &avail.Slitting)
	go probe(&models.PrintingRecord{}, &avail.Printing)
	go probe(&models.CuttingRecord{}, &avail.Cutting)
	wg.Wait()

	return avail
}

func (r *JobCardRepository) Update(ctx context.Context, id types.SnowflakeID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.JobCard{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job card %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *JobCardRepository) Delete(ctx context.Context, id types.SnowflakeID, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var card models.JobCard
		if err := tx.First(&card, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("job card %d: %w", id, ErrNotFound)
			}
			return err
		}
		if err := tx.Model(&models.JobCard{}).Where("id = ?", id).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JobCard{}, id).Error
	})
}
