package repositories

import (
	"context"
	"testing"

	"packflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCompleteItem(t *testing.T, repo *BundleRepository, weight float64) *models.CompleteItem {
	item, err := repo.CreateCompleteItem(context.Background(), nil, BundleItemForm{
		BundleType: "25kg", Weight: weight, Bags: 1, Complete: true,
	}, 1)
	require.NoError(t, err)
	return item
}

func TestValidateBarcodeForSale(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	bundles := NewBundleRepository(db)
	ctx := context.Background()

	item := seedCompleteItem(t, bundles, 25)

	summary, err := repo.ValidateBarcodeForSale(ctx, item.Barcode)
	require.NoError(t, err)
	assert.Equal(t, item.ID, summary.CompleteItemID)
	assert.Equal(t, 25.0, summary.Weight)

	_, err = repo.ValidateBarcodeForSale(ctx, "not-a-barcode")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.ValidateBarcodeForSale(ctx, "123456789")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDeliveryOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	bundles := NewBundleRepository(db)
	ctx := context.Background()
	customer := seedCustomer(t, db)

	a := seedCompleteItem(t, bundles, 25)
	b := seedCompleteItem(t, bundles, 10)

	order, err := repo.CreateDeliveryOrder(ctx, customer.ID, []SalesLineForm{
		{Barcode: a.Barcode, UnitPrice: 2},
		{Barcode: b.Barcode, UnitPrice: 3},
	}, "first lot", 1)
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderNo)
	assert.Equal(t, 80.0, order.TotalAmount) // 25*2 + 10*3
	assert.Equal(t, 35.0, order.TotalWeight)
	assert.Equal(t, 2, order.TotalBags)
	assert.Len(t, order.Items, 2)

	// Sold items leave stock.
	var sold models.CompleteItem
	require.NoError(t, db.First(&sold, a.ID).Error)
	assert.False(t, sold.InStock)

	// A sold barcode cannot be sold or returned again.
	_, err = repo.ValidateBarcodeForSale(ctx, a.Barcode)
	assert.ErrorIs(t, err, ErrAlreadyConsumed)

	_, err = repo.CreateDeliveryOrder(ctx, customer.ID, []SalesLineForm{
		{Barcode: a.Barcode, UnitPrice: 2},
	}, "", 1)
	assert.ErrorIs(t, err, ErrAlreadyConsumed)
}

func TestDeleteDeliveryOrderReleasesBarcodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	bundles := NewBundleRepository(db)
	ctx := context.Background()
	customer := seedCustomer(t, db)

	item := seedCompleteItem(t, bundles, 25)

	order, err := repo.CreateDeliveryOrder(ctx, customer.ID, []SalesLineForm{
		{Barcode: item.Barcode, UnitPrice: 2},
	}, "", 1)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDeliveryOrder(ctx, order.ID, 1))

	// The undo is bulk: the item is back in stock and sellable.
	var restored models.CompleteItem
	require.NoError(t, db.First(&restored, item.ID).Error)
	assert.True(t, restored.InStock)

	_, err = repo.ValidateBarcodeForSale(ctx, item.Barcode)
	require.NoError(t, err)

	_, err = repo.GetDeliveryOrder(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReturnLifecycle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	bundles := NewBundleRepository(db)
	ctx := context.Background()
	customer := seedCustomer(t, db)

	item := seedCompleteItem(t, bundles, 25)

	ret, err := repo.CreateReturn(ctx, customer.ID, []SalesLineForm{
		{Barcode: item.Barcode, UnitPrice: 2},
	}, "damaged", 1)
	require.NoError(t, err)
	assert.NotEmpty(t, ret.ReturnNo)
	assert.Equal(t, 50.0, ret.TotalAmount)

	_, err = repo.ValidateBarcodeForSale(ctx, item.Barcode)
	assert.ErrorIs(t, err, ErrAlreadyReturned)

	require.NoError(t, repo.DeleteReturn(ctx, ret.ID, 1))

	_, err = repo.ValidateBarcodeForSale(ctx, item.Barcode)
	require.NoError(t, err)
}

func TestCreateDeliveryOrderUnknownCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSalesRepository(db)
	bundles := NewBundleRepository(db)
	ctx := context.Background()

	item := seedCompleteItem(t, bundles, 25)

	_, err := repo.CreateDeliveryOrder(ctx, 999, []SalesLineForm{
		{Barcode: item.Barcode, UnitPrice: 2},
	}, "", 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.CreateDeliveryOrder(ctx, 999, nil, "", 1)
	assert.ErrorIs(t, err, ErrValidation)
}
