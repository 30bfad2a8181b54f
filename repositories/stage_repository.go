package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"packflow/controllers/helpers"
	"packflow/models"
	"packflow/types"

	"gorm.io/gorm"
)

// StageRepository drives the slitting, printing and cutting production
// records. Slitting and cutting consume a stock roll by barcode and feed
// their output rolls back into stock; printing only tracks packs.
type StageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

type RollForm struct {
	RollNo    int     `json:"roll_no" validate:"required"`
	Size      float64 `json:"size"`
	Gsm       int     `json:"gsm"`
	NetWeight float64 `json:"net_weight" validate:"required"`
	Meter     float64 `json:"meter"`
}

type PackForm struct {
	PackNo    int     `json:"pack_no" validate:"required"`
	NetWeight float64 `json:"net_weight" validate:"required"`
}

// consumeSource flips the referenced stock roll to consumed inside tx.
func consumeSource(tx *gorm.DB, barcode string, actor int) error {
	if _, err := helpers.ParseBarcode(barcode); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	var unit models.StockUnit
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
		Updates(map[string]interface{}{"available": false, "used_flag": true, "updated_by": actor}).Error; err != nil {
		return err
	}
	return helpers.InsertTransactionHistory(tx, barcode,
		"consumed", "stock_unit", "stock unit consumed by stage", actor)
}

// releaseSource is the reversal: the roll becomes pickable again, UsedFlag
// stays set as the audit marker.
func releaseSource(tx *gorm.DB, barcode string, actor int) error {
	if barcode == "" {
		return nil
	}
	return tx.Model(&models.StockUnit{}).Where("barcode = ?", barcode).
		Updates(map[string]interface{}{"available": true, "updated_by": actor}).Error
}

// retireOutput flags an output roll's stock unit unavailable. Units are
// never hard-deleted, even on roll deletion.
func retireOutput(tx *gorm.DB, barcode string, actor int) error {
	if barcode == "" {
		return nil
	}
	return tx.Model(&models.StockUnit{}).Where("barcode = ?", barcode).
		Updates(map[string]interface{}{"available": false, "updated_by": actor}).Error
}

// ---- slitting ----

func (r *StageRepository) CreateSlittingRecord(ctx context.Context, record *models.SlittingRecord, rolls []RollForm, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.SourceBarcode != "" {
			if err := consumeSource(tx, record.SourceBarcode, actor); err != nil {
				return err
			}
		}
		record.CreatedBy = actor
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for _, f := range rolls {
			if err := r.addSlittingRoll(tx, record.ID, f, actor); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StageRepository) addSlittingRoll(tx *gorm.DB, recordID uint, f RollForm, actor int) error {
	roll := models.SlittingRoll{
		RecordID:  recordID,
		RollNo:    f.RollNo,
		Size:      f.Size,
		Gsm:       f.Gsm,
		NetWeight: f.NetWeight,
		Meter:     f.Meter,
		CreatedBy: actor,
	}
	if err := tx.Create(&roll).Error; err != nil {
		return err
	}
	code, err := helpers.AssignBarcode(tx, &models.SlittingRoll{}, roll.ID, strconv.Itoa(f.RollNo))
	if err != nil {
		return err
	}
	roll.Barcode = code

	result := tx.Model(&models.SlittingRecord{}).Where("id = ?", recordID).Updates(map[string]interface{}{
		"total_rolls":      gorm.Expr("total_rolls + ?", 1),
		"total_net_weight": gorm.Expr("total_net_weight + ?", f.NetWeight),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	unit := models.StockUnit{
		Barcode:      code,
		Size:         f.Size,
		Gsm:          f.Gsm,
		NetWeight:    f.NetWeight,
		Available:    true,
		SourceType:   models.StockSourceSlitting,
		SourceItemID: roll.ID,
		CreatedBy:    actor,
	}
	return tx.Create(&unit).Error
}

// AddSlittingRoll appends one output roll to an existing record.
func (r *StageRepository) AddSlittingRoll(ctx context.Context, recordID uint, f RollForm, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.addSlittingRoll(tx, recordID, f, actor)
	})
}

// DeleteSlittingRoll removes a roll, subtracts its ledger contribution and
// retires its stock unit.
func (r *StageRepository) DeleteSlittingRoll(ctx context.Context, rollID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roll models.SlittingRoll
		if err := tx.First(&roll, rollID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("slitting roll %d: %w", rollID, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.SlittingRecord{}).Where("id = ?", roll.RecordID).Updates(map[string]interface{}{
			"total_rolls":      gorm.Expr("total_rolls - ?", 1),
			"total_net_weight": gorm.Expr("total_net_weight - ?", roll.NetWeight),
		}).Error; err != nil {
			return err
		}

		if err := retireOutput(tx, roll.Barcode, actor); err != nil {
			return err
		}

		if err := tx.Model(&models.SlittingRoll{}).Where("id = ?", rollID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SlittingRoll{}, rollID).Error
	})
}

// DeleteSlittingRecord reverses the whole stage entry: the consumed source
// roll becomes available again and every output roll is retired.
func (r *StageRepository) DeleteSlittingRecord(ctx context.Context, recordID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.SlittingRecord
		if err := tx.First(&record, recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("slitting record %d: %w", recordID, ErrNotFound)
			}
			return err
		}

		var rolls []models.SlittingRoll
		if err := tx.Where("record_id = ?", recordID).Find(&rolls).Error; err != nil {
			return err
		}
		for _, roll := range rolls {
			if err := retireOutput(tx, roll.Barcode, actor); err != nil {
				return err
			}
		}
		if err := tx.Where("record_id = ?", recordID).Delete(&models.SlittingRoll{}).Error; err != nil {
			return err
		}

		if err := releaseSource(tx, record.SourceBarcode, actor); err != nil {
			return err
		}

		if err := tx.Model(&models.SlittingRecord{}).Where("id = ?", recordID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SlittingRecord{}, recordID).Error
	})
}

// ---- printing ----

func (r *StageRepository) CreatePrintingRecord(ctx context.Context, record *models.PrintingRecord, packs []PackForm, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record.CreatedBy = actor
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for _, f := range packs {
			pack := models.PrintingPack{
				RecordID:  record.ID,
				PackNo:    f.PackNo,
				NetWeight: f.NetWeight,
				CreatedBy: actor,
			}
			if err := tx.Create(&pack).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.PrintingRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
				"total_packs":      gorm.Expr("total_packs + ?", 1),
				"total_net_weight": gorm.Expr("total_net_weight + ?", f.NetWeight),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StageRepository) DeletePrintingPack(ctx context.Context, packID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pack models.PrintingPack
		if err := tx.First(&pack, packID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("printing pack %d: %w", packID, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.PrintingRecord{}).Where("id = ?", pack.RecordID).Updates(map[string]interface{}{
			"total_packs":      gorm.Expr("total_packs - ?", 1),
			"total_net_weight": gorm.Expr("total_net_weight - ?", pack.NetWeight),
		}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.PrintingPack{}).Where("id = ?", packID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PrintingPack{}, packID).Error
	})
}

// ---- cutting ----

func (r *StageRepository) CreateCuttingRecord(ctx context.Context, record *models.CuttingRecord, rolls []RollForm, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if record.SourceBarcode != "" {
			if err := consumeSource(tx, record.SourceBarcode, actor); err != nil {
				return err
			}
		}
		record.CreatedBy = actor
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		for _, f := range rolls {
			if err := r.addCuttingRoll(tx, record.ID, f, actor); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *StageRepository) addCuttingRoll(tx *gorm.DB, recordID uint, f RollForm, actor int) error {
	roll := models.CuttingRoll{
		RecordID:  recordID,
		RollNo:    f.RollNo,
		Size:      f.Size,
		Gsm:       f.Gsm,
		NetWeight: f.NetWeight,
		CreatedBy: actor,
	}
	if err := tx.Create(&roll).Error; err != nil {
		return err
	}
	code, err := helpers.AssignBarcode(tx, &models.CuttingRoll{}, roll.ID, strconv.Itoa(f.RollNo))
	if err != nil {
		return err
	}
	roll.Barcode = code

	result := tx.Model(&models.CuttingRecord{}).Where("id = ?", recordID).Updates(map[string]interface{}{
		"total_rolls":      gorm.Expr("total_rolls + ?", 1),
		"total_net_weight": gorm.Expr("total_net_weight + ?", f.NetWeight),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	unit := models.StockUnit{
		Barcode:      code,
		Size:         f.Size,
		Gsm:          f.Gsm,
		NetWeight:    f.NetWeight,
		Available:    true,
		SourceType:   models.StockSourceCutting,
		SourceItemID: roll.ID,
		CreatedBy:    actor,
	}
	return tx.Create(&unit).Error
}

func (r *StageRepository) AddCuttingRoll(ctx context.Context, recordID uint, f RollForm, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.addCuttingRoll(tx, recordID, f, actor)
	})
}

func (r *StageRepository) DeleteCuttingRoll(ctx context.Context, rollID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roll models.CuttingRoll
		if err := tx.First(&roll, rollID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cutting roll %d: %w", rollID, ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.CuttingRecord{}).Where("id = ?", roll.RecordID).Updates(map[string]interface{}{
			"total_rolls":      gorm.Expr("total_rolls - ?", 1),
			"total_net_weight": gorm.Expr("total_net_weight - ?", roll.NetWeight),
		}).Error; err != nil {
			return err
		}

		if err := retireOutput(tx, roll.Barcode, actor); err != nil {
			return err
		}

		if err := tx.Model(&models.CuttingRoll{}).Where("id = ?", rollID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CuttingRoll{}, rollID).Error
	})
}

func (r *StageRepository) DeleteCuttingRecord(ctx context.Context, recordID uint, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.CuttingRecord
		if err := tx.First(&record, recordID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("cutting record %d: %w", recordID, ErrNotFound)
			}
			return err
		}

		var rolls []models.CuttingRoll
		if err := tx.Where("record_id = ?", recordID).Find(&rolls).Error; err != nil {
			return err
		}
		for _, roll := range rolls {
			if err := retireOutput(tx, roll.Barcode, actor); err != nil {
				return err
			}
		}
		if err := tx.Where("record_id = ?", recordID).Delete(&models.CuttingRoll{}).Error; err != nil {
			return err
		}

		if err := releaseSource(tx, record.SourceBarcode, actor); err != nil {
			return err
		}

		if err := tx.Model(&models.CuttingRecord{}).Where("id = ?", recordID).
			Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CuttingRecord{}, recordID).Error
	})
}

// ---- reads ----

func (r *StageRepository) SlittingByJobCard(ctx context.Context, jobCardID types.SnowflakeID) ([]models.SlittingRecord, error) {
	var records []models.SlittingRecord
	if err := r.db.WithContext(ctx).Preload("Rolls").Where("job_card_id = ?", jobCardID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *StageRepository) PrintingByJobCard(ctx context.Context, jobCardID types.SnowflakeID) ([]models.PrintingRecord, error) {
	var records []models.PrintingRecord
	if err := r.db.WithContext(ctx).Preload("Packs").Where("job_card_id = ?", jobCardID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *StageRepository) CuttingByJobCard(ctx context.Context, jobCardID types.SnowflakeID) ([]models.CuttingRecord, error) {
	var records []models.CuttingRecord
	if err := r.db.WithContext(ctx).Preload("Rolls").Where("job_card_id = ?", jobCardID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
