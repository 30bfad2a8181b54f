package models

import (
	"packflow/types"

	"gorm.io/gorm"
)

// SlittingRecord aggregates the slitting stage of one job card. Roll totals
// follow the same incremental ledger rules as MaterialBatch.
type SlittingRecord struct {
	gorm.Model
	JobCardID      types.SnowflakeID `json:"job_card_id" gorm:"index"`
	InputWeight    float64 `json:"input_weight"`
	Size           float64 `json:"size"`
	Gsm            int     `json:"gsm"`
	TotalRolls     int     `json:"total_rolls"`
	TotalNetWeight float64 `json:"total_net_weight"`
	Wastage        float64 `json:"wastage"`
	// Barcode of the material stock roll this record consumed.
	SourceBarcode string `json:"source_barcode"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int

	Rolls []SlittingRoll `gorm:"foreignKey:RecordID;references:ID" json:"rolls"`
}

// SlittingRoll is one output roll of a slitting record. The barcode is
// assigned in the second phase of creation and mirrors into a StockUnit.
type SlittingRoll struct {
	gorm.Model
	RecordID  uint    `json:"record_id" gorm:"index"`
	RollNo    int     `json:"roll_no"`
	Size      float64 `json:"size"`
	Gsm       int     `json:"gsm"`
	NetWeight float64 `json:"net_weight"`
	Meter     float64 `json:"meter"`
	Barcode   string  `json:"barcode" gorm:"uniqueIndex;default:null"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type PrintingRecord struct {
	gorm.Model
	JobCardID      types.SnowflakeID `json:"job_card_id" gorm:"index"`
	Design         string  `json:"design"`
	Colours        int     `json:"colours"`
	TotalPacks     int     `json:"total_packs"`
	TotalNetWeight float64 `json:"total_net_weight"`
	Wastage        float64 `json:"wastage"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int

	Packs []PrintingPack `gorm:"foreignKey:RecordID;references:ID" json:"packs"`
}

type PrintingPack struct {
	gorm.Model
	RecordID  uint    `json:"record_id" gorm:"index"`
	PackNo    int     `json:"pack_no"`
	NetWeight float64 `json:"net_weight"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type CuttingRecord struct {
	gorm.Model
	JobCardID      types.SnowflakeID `json:"job_card_id" gorm:"index"`
	CutSize        float64 `json:"cut_size"`
	TotalRolls     int     `json:"total_rolls"`
	TotalNetWeight float64 `json:"total_net_weight"`
	Wastage        float64 `json:"wastage"`
	// Barcode of the stock roll this record consumed, kept for the audit
	// trail after the StockUnit flips to consumed.
	SourceBarcode string `json:"source_barcode"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int

	Rolls []CuttingRoll `gorm:"foreignKey:RecordID;references:ID" json:"rolls"`
}

type CuttingRoll struct {
	gorm.Model
	RecordID  uint    `json:"record_id" gorm:"index"`
	RollNo    int     `json:"roll_no"`
	Size      float64 `json:"size"`
	Gsm       int     `json:"gsm"`
	NetWeight float64 `json:"net_weight"`
	Barcode   string  `json:"barcode" gorm:"uniqueIndex;default:null"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
