package repositories

import (
	"context"
	"errors"
	"fmt"

	"packflow/controllers/helpers"
	"packflow/models"

	"gorm.io/gorm"
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// GetByBarcode looks up the live stock unit for a scanned code. The code is
// validated as a 64-bit numeric before the query; lookups are exact-match.
func (r *StockRepository) GetByBarcode(ctx context.Context, barcode string) (*models.StockUnit, error) {
	if _, err := helpers.ParseBarcode(barcode); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	var unit models.StockUnit
	if err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("stock unit %s: %w", barcode, ErrNotFound)
		}
		return nil, err
	}
	return &unit, nil
}

// Consume flips an available unit to consumed. The row stays behind with
// UsedFlag set as the permanent audit trail.
func (r *StockRepository) Consume(ctx context.Context, barcode string, actor int) (*models.StockUnit, error) {
	if _, err := helpers.ParseBarcode(barcode); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	var unit models.StockUnit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barcode = ?", barcode).First(&unit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("stock unit %s: %w", barcode, ErrNotFound)
			}
			return err
		}
		if !unit.Available {
			return fmt.Errorf("stock unit %s: %w", barcode, ErrStockConsumed)
		}

		if err := tx.Model(&models.StockUnit{}).Where("barcode = ?", barcode).
			Updates(map[string]interface{}{
				"available":  false,
				"used_flag":  true,
				"updated_by": actor,
			}).Error; err != nil {
			return err
		}
		unit.Available = false
		unit.UsedFlag = true

		return helpers.InsertTransactionHistory(tx, barcode,
			"consumed", "stock_unit", "stock unit consumed", actor)
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// Restore is the reversal of Consume: deleting the downstream record makes
// the roll pickable again. The unit is flag-flipped back, never hard-deleted,
// and UsedFlag stays set so the consumption remains visible in audit.
func (r *StockRepository) Restore(ctx context.Context, barcode string, actor int) (*models.StockUnit, error) {
	if _, err := helpers.ParseBarcode(barcode); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	var unit models.StockUnit
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barcode = ?", barcode).First(&unit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("stock unit %s: %w", barcode, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.StockUnit{}).Where("barcode = ?", barcode).
			Updates(map[string]interface{}{
				"available":  true,
				"updated_by": actor,
			}).Error; err != nil {
			return err
		}
		unit.Available = true

		return helpers.InsertTransactionHistory(tx, barcode,
			"restored", "stock_unit", "stock unit restored to available", actor)
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// ListAvailable returns the rolls visible to the stage pickers, optionally
// filtered by source type.
func (r *StockRepository) ListAvailable(ctx context.Context, sourceType string) ([]models.StockUnit, error) {
	query := r.db.WithContext(ctx).Where("available = ?", true)
	if sourceType != "" {
		query = query.Where("source_type = ?", sourceType)
	}

	var units []models.StockUnit
	if err := query.Order("id desc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}
