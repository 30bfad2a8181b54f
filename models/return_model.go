package models

import (
	"packflow/controllers/idgen"
	"packflow/types"

	"gorm.io/gorm"
)

// ReturnInfo is the aggregate for a customer return. Soft-deleting the
// header (Status = 'cancelled' or gorm delete) releases every claimed
// barcode in bulk, so barcode validation always checks the parent too.
type ReturnInfo struct {
	gorm.Model
	ID          types.SnowflakeID `json:"id" gorm:"primary_key"`
	ReturnNo    string  `json:"return_no" gorm:"unique"`
	CustomerID  uint    `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalWeight float64 `json:"total_weight"`
	TotalBags   int     `json:"total_bags"`
	Status      string  `json:"status" gorm:"default:'active'"`
	Remarks     string  `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Items []ReturnItem `gorm:"foreignKey:ReturnID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

func (r *ReturnInfo) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type ReturnItem struct {
	gorm.Model
	ReturnID       types.SnowflakeID `json:"return_id" gorm:"index"`
	CompleteItemID uint    `json:"complete_item_id"`
	Barcode        string  `json:"barcode" gorm:"index"`
	BundleType     string  `json:"bundle_type"`
	Weight         float64 `json:"weight"`
	Bags           int     `json:"bags"`
	UnitPrice      float64 `json:"unit_price"`
	Total          float64 `json:"total"`
	Status         string  `json:"status" gorm:"default:'active'"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}
