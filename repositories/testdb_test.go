package repositories

import (
	"testing"

	"packflow/controllers/idgen"
	"packflow/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	idgen.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Customer{},
		&models.Supplier{},
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
	require.NoError(t, err)

	return db
}

func seedSupplier(t *testing.T, db *gorm.DB) models.Supplier {
	supplier := models.Supplier{SupplierCode: "SUP1", SupplierName: "Paper Mill"}
	require.NoError(t, db.Create(&supplier).Error)
	return supplier
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	customer := models.Customer{CustomerCode: "CUST1", CustomerName: "Pack Buyer"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}
