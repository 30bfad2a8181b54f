package models

import "time"

// TransactionHistory records semantic ledger events for audit.
type TransactionHistory struct {
	ID        uint   `gorm:"primaryKey"`
	RefNo     string `json:"ref_no"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Detail    string `json:"detail"`
	CreatedAt time.Time
	CreatedBy int
	UpdatedAt time.Time
	UpdatedBy int
}
