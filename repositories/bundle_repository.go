package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"packflow/config"
	"packflow/controllers/helpers"
	"packflow/models"
	"packflow/types"

	"gorm.io/gorm"
)

type BundleRepository struct {
	db *gorm.DB
}

func NewBundleRepository(db *gorm.DB) *BundleRepository {
	return &BundleRepository{db: db}
}

type BundleItemForm struct {
	BundleType string  `json:"bundle_type" validate:"required"`
	Weight     float64 `json:"weight" validate:"required"`
	Bags       int     `json:"bags" validate:"required"`
	Complete   bool    `json:"complete"`
}

func applyBundleDelta(tx *gorm.DB, bundleID uint, weight float64, bags int) error {
	result := tx.Model(&models.Bundle{}).Where("id = ?", bundleID).Updates(map[string]interface{}{
		"total_weight": gorm.Expr("total_weight + ?", weight),
		"total_bags":   gorm.Expr("total_bags + ?", bags),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateCompleteItem creates a finished-goods unit in the staging area
// (bundleID nil) or directly inside a bundle. Barcode is primary key plus
// the creation timestamp, assigned in phase two of the same transaction.
func (r *BundleRepository) CreateCompleteItem(ctx context.Context, bundleID *uint, form BundleItemForm, actor int) (*models.CompleteItem, error) {
	item := models.CompleteItem{
		BundleID:   bundleID,
		BundleType: form.BundleType,
		Weight:     form.Weight,
		Bags:       form.Bags,
		InStock:    true,
		CreatedBy:  actor,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if bundleID != nil {
			var bundle models.Bundle
			if err := tx.First(&bundle, *bundleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("bundle %d: %w", *bundleID, ErrNotFound)
				}
				return err
			}
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		code, err := helpers.AssignBarcode(tx, &models.CompleteItem{}, item.ID, helpers.TimestampSuffix(time.Now()))
		if err != nil {
			return err
		}
		item.Barcode = code

		if bundleID != nil {
			if err := applyBundleDelta(tx, *bundleID, form.Weight, form.Bags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *BundleRepository) CreateNonCompleteItem(ctx context.Context, bundleID *uint, form BundleItemForm, actor int) (*models.NonCompleteItem, error) {
	item := models.NonCompleteItem{
		BundleID:   bundleID,
		BundleType: form.BundleType,
		Weight:     form.Weight,
		Bags:       form.Bags,
		CreatedBy:  actor,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if bundleID != nil {
			var bundle models.Bundle
			if err := tx.First(&bundle, *bundleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("bundle %d: %w", *bundleID, ErrNotFound)
				}
				return err
			}
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		code, err := helpers.AssignBarcode(tx, &models.NonCompleteItem{}, item.ID, helpers.TimestampSuffix(time.Now()))
		if err != nil {
			return err
		}
		item.Barcode = code

		if bundleID != nil {
			if err := applyBundleDelta(tx, *bundleID, form.Weight, form.Bags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteCompleteItem removes a finished-goods unit and, when it belongs to a
// bundle, subtracts its contribution in the same transaction.
func (r *BundleRepository) DeleteCompleteItem(ctx context.Context, itemID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CompleteItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("complete item %d: %w", itemID, ErrNotFound)
			}
			return err
		}

		if item.BundleID != nil {
			if err := applyBundleDelta(tx, *item.BundleID, -item.Weight, -item.Bags); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.CompleteItem{}).Where("id = ?", itemID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CompleteItem{}, itemID).Error
	})
}

// FinalizeBundle groups staged complete items into a new bundle for the job
// card and rolls the stage wastage figures up into the bundle total. Match
// policy follows the finalize configuration, same as material batches.
func (r *BundleRepository) FinalizeBundle(ctx context.Context, itemIDs []uint, jobCardID types.SnowflakeID, actor int) (*models.Bundle, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("no item ids given: %w", ErrValidation)
	}

	var bundle models.Bundle

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CompleteItem
		if err := tx.Where("id IN ? AND bundle_id IS NULL", itemIDs).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return fmt.Errorf("expected %d unassigned items, found 0: %w", len(itemIDs), ErrNoneMatched)
		}
		if len(items) < len(itemIDs) {
			if config.FinalizeStrict {
				return fmt.Errorf("expected %d unassigned items, found %d: %w", len(itemIDs), len(items), ErrPartialMatch)
			}
			if err := helpers.InsertTransactionHistory(tx, "",
				"warning", "bundle",
				fmt.Sprintf("finalize matched %d of %d items, proceeding", len(items), len(itemIDs)), actor); err != nil {
				return err
			}
		}

		bundle = models.Bundle{JobCardID: jobCardID, CreatedBy: actor}
		if err := tx.Create(&bundle).Error; err != nil {
			return err
		}

		var weight float64
		var bags int
		for i := range items {
			if err := tx.Model(&models.CompleteItem{}).Where("id = ?", items[i].ID).
				Updates(map[string]interface{}{"bundle_id": bundle.ID, "updated_by": actor}).Error; err != nil {
				return err
			}
			weight += items[i].Weight
			bags += items[i].Bags
		}

		if err := applyBundleDelta(tx, bundle.ID, weight, bags); err != nil {
			return err
		}

		wastage, err := stageWastage(tx, jobCardID)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Bundle{}).Where("id = ?", bundle.ID).
			Update("total_wastage", wastage).Error; err != nil {
			return err
		}

		return helpers.InsertTransactionHistory(tx, fmt.Sprintf("BUNDLE-%d", bundle.ID),
			"finalized", "bundle", fmt.Sprintf("%d items bundled", len(items)), actor)
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("CompleteItems").First(&bundle, bundle.ID).Error; err != nil {
		return nil, err
	}
	return &bundle, nil
}

// stageWastage sums the wastage recorded by every stage of the job card.
func stageWastage(tx *gorm.DB, jobCardID types.SnowflakeID) (float64, error) {
	var total float64
	for _, model := range []interface{}{
		&models.SlittingRecord{},
		&models.PrintingRecord{},
		&models.CuttingRecord{},
	} {
		var sum float64
		if err := tx.Model(model).Where("job_card_id = ?", jobCardID).
			Select("COALESCE(SUM(wastage), 0)").Scan(&sum).Error; err != nil {
			return 0, err
		}
		total += sum
	}
	return total, nil
}

// RecomputeBundleTotals rebuilds a bundle's totals from its items, the
// repair path for drift.
func (r *BundleRepository) RecomputeBundleTotals(ctx context.Context, bundleID uint, actor int) (*models.Bundle, error) {
	var bundle models.Bundle

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&bundle, bundleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("bundle %d: %w", bundleID, ErrNotFound)
			}
			return err
		}

		var items []models.CompleteItem
		if err := tx.Where("bundle_id = ?", bundleID).Find(&items).Error; err != nil {
			return err
		}
		var nonItems []models.NonCompleteItem
		if err := tx.Where("bundle_id = ?", bundleID).Find(&nonItems).Error; err != nil {
			return err
		}

		var weight float64
		var bags int
		for _, it := range items {
			weight += it.Weight
			bags += it.Bags
		}
		for _, it := range nonItems {
			weight += it.Weight
			bags += it.Bags
		}

		if err := tx.Model(&models.Bundle{}).Where("id = ?", bundleID).Updates(map[string]interface{}{
			"total_weight": weight,
			"total_bags":   bags,
			"updated_by":   actor,
		}).Error; err != nil {
			return err
		}

		bundle.TotalWeight = weight
		bundle.TotalBags = bags
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

// UnassignedCompleteItems lists the finished-goods staging area.
func (r *BundleRepository) UnassignedCompleteItems(ctx context.Context) ([]models.CompleteItem, error) {
	var items []models.CompleteItem
	if err := r.db.WithContext(ctx).Where("bundle_id IS NULL").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BundleRepository) GetBundle(ctx context.Context, bundleID uint) (*models.Bundle, error) {
	var bundle models.Bundle
	if err := r.db.WithContext(ctx).Preload("CompleteItems").Preload("NonCompleteItems").
		First(&bundle, bundleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bundle %d: %w", bundleID, ErrNotFound)
		}
		return nil, err
	}
	return &bundle, nil
}

func (r *BundleRepository) ListBundles(ctx context.Context) ([]models.Bundle, error) {
	var bundles []models.Bundle
	if err := r.db.WithContext(ctx).Order("id desc").Find(&bundles).Error; err != nil {
		return nil, err
	}
	return bundles, nil
}
