package helpers

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// Barcode builds the scannable code for a physical unit: the row's own
// primary key followed by a digits-only suffix. Uniqueness rides on the
// primary key, so suffix collisions are harmless.
func Barcode(id uint, suffix string) string {
	return strconv.FormatUint(uint64(id), 10) + DigitsOnly(suffix)
}

// TimestampSuffix formats t as DDMMYYHHMMSS, each part zero-padded to two
// digits. Non-digit characters are stripped so locale formatting can never
// leak into a barcode.
func TimestampSuffix(t time.Time) string {
	s := t.Format("020106 150405")
	return DigitsOnly(s)
}

// DigitsOnly strips every non-numeric character.
func DigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// ParseBarcode validates that a scanned code is a pure numeric string that
// fits a 64-bit integer. Barcodes exceed 32-bit range, so lookups must go
// through this before hitting the database.
func ParseBarcode(code string) (uint64, error) {
	if code == "" {
		return 0, errors.New("barcode is empty")
	}
	n, err := strconv.ParseUint(code, 10, 64)
	if err != nil {
		return 0, errors.New("barcode must be numeric")
	}
	return n, nil
}

// AssignBarcode is phase two of barcode creation: the row was inserted first
// to obtain its primary key, now the computed code is written back. Both
// phases must run on the same transaction so a crash between them never
// leaves a committed placeholder.
func AssignBarcode(tx *gorm.DB, model interface{}, id uint, suffix string) (string, error) {
	code := Barcode(id, suffix)
	if err := tx.Model(model).Where("id = ?", id).Update("barcode", code).Error; err != nil {
		return "", err
	}
	return code, nil
}
