package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"packflow/config"
	"packflow/controllers/helpers"
	"packflow/models"

	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

// MaterialItemForm is the request shape for one reel.
type MaterialItemForm struct {
	ReelNo       int     `json:"reel_no" validate:"required"`
	ParticularID uint    `json:"particular_id" validate:"required"`
	Gsm          int     `json:"gsm"`
	Size         float64 `json:"size"`
	NetWeight    float64 `json:"net_weight" validate:"required"`
	GrossWeight  float64 `json:"gross_weight" validate:"required"`
	Colour       string  `json:"colour"`
}

// applyBatchDelta adds signed deltas to the batch running totals. Must run
// on the same transaction as the child mutation it accounts for.
func applyBatchDelta(tx *gorm.DB, batchID uint, reels int, net, gross float64) error {
	result := tx.Model(&models.MaterialBatch{}).Where("id = ?", batchID).Updates(map[string]interface{}{
		"total_reels":        gorm.Expr("total_reels + ?", reels),
		"total_net_weight":   gorm.Expr("total_net_weight + ?", net),
		"total_gross_weight": gorm.Expr("total_gross_weight + ?", gross),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// createItemWithBarcode inserts the reel, then writes back the barcode
// computed from its fresh primary key and reel number. Both phases run on
// the caller's transaction.
func createItemWithBarcode(tx *gorm.DB, item *models.MaterialItem) error {
	if err := tx.Create(item).Error; err != nil {
		return err
	}
	code, err := helpers.AssignBarcode(tx, &models.MaterialItem{}, item.ID, strconv.Itoa(item.ReelNo))
	if err != nil {
		return err
	}
	item.Barcode = code
	return nil
}

func createStockUnit(tx *gorm.DB, item *models.MaterialItem, actor int) error {
	unit := models.StockUnit{
		Barcode:      item.Barcode,
		Size:         item.Size,
		Gsm:          item.Gsm,
		NetWeight:    item.NetWeight,
		Available:    true,
		SourceType:   models.StockSourceMaterial,
		SourceItemID: item.ID,
		CreatedBy:    actor,
	}
	return tx.Create(&unit).Error
}

// CreateBatch creates a batch with its initial reels in one transaction:
// batch row, items with assigned barcodes, totals, and stock units.
func (r *MaterialRepository) CreateBatch(ctx context.Context, supplierID uint, forms []MaterialItemForm, actor int) (*models.MaterialBatch, error) {
	var supplier models.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier %d: %w", supplierID, ErrNotFound)
		}
		return nil, err
	}

	batch := models.MaterialBatch{SupplierID: supplierID, CreatedBy: actor}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}
		for _, f := range forms {
			item := models.MaterialItem{
				BatchID:      &batch.ID,
				ReelNo:       f.ReelNo,
				ParticularID: f.ParticularID,
				Gsm:          f.Gsm,
				Size:         f.Size,
				NetWeight:    f.NetWeight,
				GrossWeight:  f.GrossWeight,
				Colour:       f.Colour,
				CreatedBy:    actor,
			}
			if err := createItemWithBarcode(tx, &item); err != nil {
				return err
			}
			if err := applyBatchDelta(tx, batch.ID, 1, f.NetWeight, f.GrossWeight); err != nil {
				return err
			}
			if err := createStockUnit(tx, &item, actor); err != nil {
				return err
			}
			batch.Items = append(batch.Items, item)
		}
		return helpers.InsertTransactionHistory(tx, fmt.Sprintf("BATCH-%d", batch.ID),
			"created", "material_batch", fmt.Sprintf("batch created with %d reels", len(forms)), actor)
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&batch, batch.ID).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// AddItem creates one reel, either inside a batch (totals move, stock unit
// created) or in the unassigned staging area (batchID nil, no aggregation).
func (r *MaterialRepository) AddItem(ctx context.Context, batchID *uint, form MaterialItemForm, actor int) (*models.MaterialItem, error) {
	item := models.MaterialItem{
		BatchID:      batchID,
		ReelNo:       form.ReelNo,
		ParticularID: form.ParticularID,
		Gsm:          form.Gsm,
		Size:         form.Size,
		NetWeight:    form.NetWeight,
		GrossWeight:  form.GrossWeight,
		Colour:       form.Colour,
		CreatedBy:    actor,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if batchID != nil {
			var batch models.MaterialBatch
			if err := tx.First(&batch, *batchID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("batch %d: %w", *batchID, ErrNotFound)
				}
				return err
			}
		}
		if err := createItemWithBarcode(tx, &item); err != nil {
			return err
		}
		if batchID == nil {
			return nil
		}
		if err := applyBatchDelta(tx, *batchID, 1, form.NetWeight, form.GrossWeight); err != nil {
			return err
		}
		if err := createStockUnit(tx, &item, actor); err != nil {
			return err
		}
		return helpers.InsertTransactionHistory(tx, item.Barcode,
			"updated", "material_batch", "batch totals updated on item add", actor)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a reel and subtracts its contribution from the batch
// totals in the same transaction. Its stock unit is flagged unavailable.
func (r *MaterialRepository) DeleteItem(ctx context.Context, itemID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.MaterialItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("material item %d: %w", itemID, ErrNotFound)
			}
			return err
		}

		if item.BatchID != nil {
			if err := applyBatchDelta(tx, *item.BatchID, -1, -item.NetWeight, -item.GrossWeight); err != nil {
				return err
			}
		}

		if err := tx.Model(&models.MaterialItem{}).Where("id = ?", itemID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.MaterialItem{}, itemID).Error; err != nil {
			return err
		}

		if item.Barcode != "" {
			if err := tx.Model(&models.StockUnit{}).
				Where("barcode = ?", item.Barcode).
				Updates(map[string]interface{}{"available": false, "updated_by": actor}).Error; err != nil {
				return err
			}
		}

		return helpers.InsertTransactionHistory(tx, item.Barcode,
			"deleted", "material_item", "batch totals decremented on item delete", actor)
	})
}

// FinalizeBatch groups unassigned reels into a new batch. The match policy
// when fewer reels than requested are still unassigned is a configuration
// decision: strict aborts with a conflict, lenient proceeds with the subset
// and records a warning event.
func (r *MaterialRepository) FinalizeBatch(ctx context.Context, itemIDs []uint, supplierID uint, actor int) (*models.MaterialBatch, error) {
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("no item ids given: %w", ErrValidation)
	}

	var batch models.MaterialBatch

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.MaterialItem
		if err := tx.Where("id IN ? AND batch_id IS NULL", itemIDs).Find(&items).Error; err != nil {
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
				"warning", "material_batch",
				fmt.Sprintf("finalize matched %d of %d items, proceeding", len(items), len(itemIDs)), actor); err != nil {
				return err
			}
		}

		batch = models.MaterialBatch{SupplierID: supplierID, CreatedBy: actor}
		if err := tx.Create(&batch).Error; err != nil {
			return err
		}

		var reels int
		var net, gross float64
		for i := range items {
			if err := tx.Model(&models.MaterialItem{}).Where("id = ?", items[i].ID).
				Updates(map[string]interface{}{"batch_id": batch.ID, "updated_by": actor}).Error; err != nil {
				return err
			}
			reels++
			net += items[i].NetWeight
			gross += items[i].GrossWeight
			if err := createStockUnit(tx, &items[i], actor); err != nil {
				return err
			}
		}

		if err := applyBatchDelta(tx, batch.ID, reels, net, gross); err != nil {
			return err
		}

		return helpers.InsertTransactionHistory(tx, fmt.Sprintf("BATCH-%d", batch.ID),
			"finalized", "material_batch", fmt.Sprintf("%d reels assigned", reels), actor)
	})
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Preload("Items").First(&batch, batch.ID).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// RecomputeBatchTotals is the repair path: totals are rebuilt from a full
// scan of the batch's active items and the stored values overwritten.
func (r *MaterialRepository) RecomputeBatchTotals(ctx context.Context, batchID uint, actor int) (*models.MaterialBatch, error) {
	var batch models.MaterialBatch

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&batch, batchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("batch %d: %w", batchID, ErrNotFound)
			}
			return err
		}

		var items []models.MaterialItem
		if err := tx.Where("batch_id = ?", batchID).Find(&items).Error; err != nil {
			return err
		}

		var reels int
		var net, gross float64
		for _, it := range items {
			reels++
			net += it.NetWeight
			gross += it.GrossWeight
		}

		if err := tx.Model(&models.MaterialBatch{}).Where("id = ?", batchID).Updates(map[string]interface{}{
			"total_reels":        reels,
			"total_net_weight":   net,
			"total_gross_weight": gross,
			"updated_by":         actor,
			"updated_at":         time.Now(),
		}).Error; err != nil {
			return err
		}

		batch.TotalReels = reels
		batch.TotalNetWeight = net
		batch.TotalGrossWeight = gross
		return helpers.InsertTransactionHistory(tx, fmt.Sprintf("BATCH-%d", batchID),
			"repaired", "material_batch", "totals recomputed from items", actor)
	})
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// UnassignedItems lists the staging area.
func (r *MaterialRepository) UnassignedItems(ctx context.Context) ([]models.MaterialItem, error) {
	var items []models.MaterialItem
	if err := r.db.WithContext(ctx).Where("batch_id IS NULL").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetBatch loads a batch with its items.
func (r *MaterialRepository) GetBatch(ctx context.Context, batchID uint) (*models.MaterialBatch, error) {
	var batch models.MaterialBatch
	if err := r.db.WithContext(ctx).Preload("Items").First(&batch, batchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("batch %d: %w", batchID, ErrNotFound)
		}
		return nil, err
	}
	return &batch, nil
}

// ListBatches returns batches newest first.
func (r *MaterialRepository) ListBatches(ctx context.Context) ([]models.MaterialBatch, error) {
	var batches []models.MaterialBatch
	if err := r.db.WithContext(ctx).Order("id desc").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}
