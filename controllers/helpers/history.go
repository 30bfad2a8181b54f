package helpers

import (
	"packflow/models"
	"time"

	"gorm.io/gorm"
)

// InsertTransactionHistory inserts a semantic audit event for a ledger
// mutation ("batch totals updated", "stock unit consumed", ...).
func InsertTransactionHistory(db *gorm.DB, refNo, status, txType, detail string, actor int) error {
	history := models.TransactionHistory{
		RefNo:     refNo,
		Status:    status,
		Type:      txType,
		Detail:    detail,
		CreatedAt: time.Now(),
		CreatedBy: actor,
		UpdatedAt: time.Now(),
		UpdatedBy: actor,
	}

	if err := db.Create(&history).Error; err != nil {
		return err
	}

	return nil
}
