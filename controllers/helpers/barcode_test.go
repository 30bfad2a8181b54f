package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcode(t *testing.T) {
	assert.Equal(t, "427", Barcode(42, "7"))
	assert.Equal(t, "42007", Barcode(42, "007"))
	assert.Equal(t, "105", Barcode(10, "R-5"))
	assert.Equal(t, "9", Barcode(9, ""))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "28082609", DigitsOnly("28/08/26 09"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "123", DigitsOnly("123"))
}

func TestTimestampSuffix(t *testing.T) {
	ts := time.Date(2026, 8, 28, 9, 5, 4, 0, time.UTC)
	suffix := TimestampSuffix(ts)

	assert.Equal(t, "280826090504", suffix)
	assert.Len(t, suffix, 12)
}

func TestParseBarcode(t *testing.T) {
	n, err := ParseBarcode("1234567890123")
	require.NoError(t, err)
	assert.Equal(t, uint64(1234567890123), n)

	_, err = ParseBarcode("")
	assert.Error(t, err)

	_, err = ParseBarcode("12AB34")
	assert.Error(t, err)

	// Larger than 64 bits must be rejected before any query.
	_, err = ParseBarcode("99999999999999999999999999")
	assert.Error(t, err)
}

func TestBarcodesDistinctAcrossIDs(t *testing.T) {
	// Same suffix on different rows still yields different codes because the
	// primary key leads.
	a := Barcode(1, "12")
	b := Barcode(2, "12")
	assert.NotEqual(t, a, b)
}
