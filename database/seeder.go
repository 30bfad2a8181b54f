package database

import (
	"errors"
	"log"

	"packflow/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedMasters(db)
}

// SeedAdminUser creates the initial admin account once.
func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("email = ?", "admin@packflow.local").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    "admin@packflow.local",
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
}

func SeedMasters(db *gorm.DB) {
	customers := []models.Customer{
		{CustomerCode: "WALKIN", CustomerName: "Walk-in Customer"},
	}
	for _, c := range customers {
		var existing models.Customer
		if err := db.Where("customer_code = ?", c.CustomerCode).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&c)
			}
		}
	}

	suppliers := []models.Supplier{
		{SupplierCode: "GENERAL", SupplierName: "General Supplier"},
	}
	for _, s := range suppliers {
		var existing models.Supplier
		if err := db.Where("supplier_code = ?", s.SupplierCode).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&s)
			}
		}
	}
}
