package models

import "gorm.io/gorm"

// MaterialBatch is the intake aggregate for one supplier lot. Totals are
// maintained incrementally and must always equal the sum over its active
// items; RecomputeBatchTotals in the repository is the repair path.
type MaterialBatch struct {
	gorm.Model
	SupplierID       uint    `json:"supplier_id"`
	TotalReels       int     `json:"total_reels"`
	TotalNetWeight   float64 `json:"total_net_weight"`
	TotalGrossWeight float64 `json:"total_gross_weight"`
	Status           string  `json:"status" gorm:"default:'open'"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int

	Items []MaterialItem `gorm:"foreignKey:BatchID;references:ID" json:"items"`
}

// MaterialItem is one raw-material reel. BatchID is NULL while the item sits
// in the unassigned staging area waiting for finalize.
type MaterialItem struct {
	gorm.Model
	BatchID      *uint   `json:"batch_id" gorm:"index"`
	ReelNo       int     `json:"reel_no"`
	ParticularID uint    `json:"particular_id"`
	Gsm          int     `json:"gsm"`
	Size         float64 `json:"size"`
	NetWeight    float64 `json:"net_weight"`
	GrossWeight  float64 `json:"gross_weight"`
	Colour       string  `json:"colour"`
	Barcode      string  `json:"barcode" gorm:"uniqueIndex;default:null"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
