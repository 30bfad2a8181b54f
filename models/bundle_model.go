package models

import (
	"packflow/types"

	"gorm.io/gorm"
)

// Bundle is the finished-goods aggregate. Weight and bag totals are
// maintained incrementally from its items; wastage is rolled up from the
// stage records of the owning job card at finalize time.
type Bundle struct {
	gorm.Model
	JobCardID    types.SnowflakeID `json:"job_card_id" gorm:"index"`
	TotalWeight  float64 `json:"total_weight"`
	TotalBags    int     `json:"total_bags"`
	TotalWastage float64 `json:"total_wastage"`
	Status       string  `json:"status" gorm:"default:'open'"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	CompleteItems    []CompleteItem    `gorm:"foreignKey:BundleID;references:ID" json:"complete_items"`
	NonCompleteItems []NonCompleteItem `gorm:"foreignKey:BundleID;references:ID" json:"non_complete_items"`
}

// CompleteItem is a sellable finished-goods unit. BundleID is NULL while the
// item waits in the unassigned staging area; InStock=false once a delivery
// order or return has claimed the barcode.
type CompleteItem struct {
	gorm.Model
	BundleID   *uint   `json:"bundle_id" gorm:"index"`
	BundleType string  `json:"bundle_type"`
	Weight     float64 `json:"weight"`
	Bags       int     `json:"bags"`
	Barcode    string  `json:"barcode" gorm:"uniqueIndex;default:null"`
	InStock    bool    `json:"in_stock"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}

type NonCompleteItem struct {
	gorm.Model
	BundleID   *uint   `json:"bundle_id" gorm:"index"`
	BundleType string  `json:"bundle_type"`
	Weight     float64 `json:"weight"`
	Bags       int     `json:"bags"`
	Barcode    string  `json:"barcode" gorm:"uniqueIndex;default:null"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
