package particular

import (
	"gorm.io/gorm"
)

// Particular is the product/paper specification master referenced by
// material items and job cards.
type Particular struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
