package models

import "gorm.io/gorm"

// Stock unit source types.
const (
	StockSourceMaterial = "material"
	StockSourceSlitting = "slitting"
	StockSourceCutting  = "cutting"
)

// StockUnit is a physical roll tracked by barcode. Available=true means the
// roll is visible to the stage pickers; consuming it flips the flag and sets
// UsedFlag so the unit survives as an audit trail. Reversals flip the flag
// back, units are never hard-deleted.
type StockUnit struct {
	gorm.Model
	Barcode      string  `json:"barcode" gorm:"uniqueIndex"`
	Size         float64 `json:"size"`
	Gsm          int     `json:"gsm"`
	NetWeight    float64 `json:"net_weight"`
	Available    bool    `json:"available"`
	UsedFlag     bool    `json:"used_flag"`
	SourceType   string  `json:"source_type"`
	SourceItemID uint    `json:"source_item_id"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
