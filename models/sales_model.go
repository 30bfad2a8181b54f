package models

import (
	"packflow/controllers/idgen"
	"packflow/types"

	"gorm.io/gorm"
)

type SalesInfo struct {
	gorm.Model
	ID          types.SnowflakeID `json:"id" gorm:"primary_key"`
	OrderNo     string  `json:"order_no" gorm:"unique"`
	CustomerID  uint    `json:"customer_id"`
	TotalAmount float64 `json:"total_amount"`
	TotalWeight float64 `json:"total_weight"`
	TotalBags   int     `json:"total_bags"`
	Status      string  `json:"status" gorm:"default:'active'"`
	Remarks     string  `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int

	Items []SalesItem `gorm:"foreignKey:SalesID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

func (s *SalesInfo) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

type SalesItem struct {
	gorm.Model
	SalesID        types.SnowflakeID `json:"sales_id" gorm:"index"`
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
