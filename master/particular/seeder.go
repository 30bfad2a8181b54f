package particular

import (
	"gorm.io/gorm"
)

func SeedParticulars(db *gorm.DB) {
	particulars := []Particular{
		{Code: "KRAFT", Name: "Kraft Paper", Description: "Brown kraft paper"},
		{Code: "DUPLEX", Name: "Duplex Board", Description: "Grey back duplex board"},
	}

	for _, p := range particulars {
		var existing Particular
		if err := db.Where("code = ?", p.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}
