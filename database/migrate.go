package database

import (
	"packflow/master/particular"
	"packflow/models"

	"gorm.io/gorm"
)

// Migrate runs the auto migration for every model in dependency order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Customer{},
		&models.Supplier{},
		&particular.Particular{},
		&models.MaterialBatch{},
		&models.MaterialItem{},
		&models.StockUnit{},
		&models.JobCard{},
		&models.SlittingRecord{},
		&models.SlittingRoll{},
		&models.PrintingRecord{},
		&models.PrintingPack{},
		&models.CuttingRecord{},
		&models.CuttingRoll{},
		&models.Bundle{},
		&models.CompleteItem{},
		&models.NonCompleteItem{},
		&models.SalesInfo{},
		&models.SalesItem{},
		&models.ReturnInfo{},
		&models.ReturnItem{},
		&models.TransactionHistory{},
	)
}
