package repositories

import (
	"context"
	"errors"
	"fmt"

	"packflow/controllers/helpers"
	"packflow/models"
	"packflow/types"

	"gorm.io/gorm"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

// ItemSummary is what the scanner UI gets back for a sellable barcode.
type ItemSummary struct {
	CompleteItemID uint    `json:"complete_item_id"`
	Barcode        string  `json:"barcode"`
	BundleType     string  `json:"bundle_type"`
	Weight         float64 `json:"weight"`
	Bags           int     `json:"bags"`
}

type SalesLineForm struct {
	Barcode   string  `json:"barcode" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"required"`
}

// ValidateBarcodeForSale checks that a finished-goods barcode is still
// sellable. A claim only counts while both the line and its owning aggregate
// are active: soft-deleting a delivery order or return releases its barcodes
// in bulk.
func (r *SalesRepository) ValidateBarcodeForSale(ctx context.Context, barcode string) (*ItemSummary, error) {
	return validateBarcode(r.db.WithContext(ctx), barcode)
}

func validateBarcode(db *gorm.DB, barcode string) (*ItemSummary, error) {
	if _, err := helpers.ParseBarcode(barcode); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrValidation)
	}

	var item models.CompleteItem
	if err := db.Where("barcode = ?", barcode).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("complete item %s: %w", barcode, ErrNotFound)
		}
		return nil, err
	}

	var sold int64
	if err := db.Model(&models.SalesItem{}).
		Joins("JOIN sales_infos ON sales_infos.id = sales_items.sales_id").
		Where("sales_items.barcode = ? AND sales_items.status = ? AND sales_items.deleted_at IS NULL", barcode, "active").
		Where("sales_infos.status = ? AND sales_infos.deleted_at IS NULL", "active").
		Count(&sold).Error; err != nil {
		return nil, err
	}
	if sold > 0 {
		return nil, fmt.Errorf("barcode %s: %w", barcode, ErrAlreadyConsumed)
	}

	var returned int64
	if err := db.Model(&models.ReturnItem{}).
		Joins("JOIN return_infos ON return_infos.id = return_items.return_id").
		Where("return_items.barcode = ? AND return_items.status = ? AND return_items.deleted_at IS NULL", barcode, "active").
		Where("return_infos.status = ? AND return_infos.deleted_at IS NULL", "active").
		Count(&returned).Error; err != nil {
		return nil, err
	}
	if returned > 0 {
		return nil, fmt.Errorf("barcode %s: %w", barcode, ErrAlreadyReturned)
	}

	return &ItemSummary{
		CompleteItemID: item.ID,
		Barcode:        item.Barcode,
		BundleType:     item.BundleType,
		Weight:         item.Weight,
		Bags:           item.Bags,
	}, nil
}

// CreateDeliveryOrder creates the header, one line per validated barcode,
// and flips each referenced CompleteItem out of stock, all in one
// transaction. Totals are the sums over the lines.
func (r *SalesRepository) CreateDeliveryOrder(ctx context.Context, customerID uint, lines []SalesLineForm, remarks string, actor int) (*models.SalesInfo, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no items given: %w", ErrValidation)
	}

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return nil, err
	}

	order := models.SalesInfo{CustomerID: customerID, Remarks: remarks, CreatedBy: actor}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		order.OrderNo = fmt.Sprintf("DO-%d", order.ID)
		if err := tx.Model(&models.SalesInfo{}).Where("id = ?", order.ID).
			Update("order_no", order.OrderNo).Error; err != nil {
			return err
		}

		var amount, weight float64
		var bags int
		for _, line := range lines {
			summary, err := validateBarcode(tx, line.Barcode)
			if err != nil {
				return err
			}

			total := line.UnitPrice * summary.Weight
			item := models.SalesItem{
				SalesID:        order.ID,
				CompleteItemID: summary.CompleteItemID,
				Barcode:        summary.Barcode,
				BundleType:     summary.BundleType,
				Weight:         summary.Weight,
				Bags:           summary.Bags,
				UnitPrice:      line.UnitPrice,
				Total:          total,
				CreatedBy:      actor,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.CompleteItem{}).Where("id = ?", summary.CompleteItemID).
				Updates(map[string]interface{}{"in_stock": false, "updated_by": actor}).Error; err != nil {
				return err
			}

			amount += total
			weight += summary.Weight
			bags += summary.Bags
			order.Items = append(order.Items, item)
		}

		if err := tx.Model(&models.SalesInfo{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"total_amount": amount,
			"total_weight": weight,
			"total_bags":   bags,
		}).Error; err != nil {
			return err
		}
		order.TotalAmount = amount
		order.TotalWeight = weight
		order.TotalBags = bags

		return helpers.InsertTransactionHistory(tx, order.OrderNo,
			"created", "delivery_order", fmt.Sprintf("%d items sold", len(lines)), actor)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteDeliveryOrder cascades: every line is removed and each referenced
// CompleteItem restored to sellable, one transaction.
func (r *SalesRepository) DeleteDeliveryOrder(ctx context.Context, orderID types.SnowflakeID, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.SalesInfo
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("delivery order %d: %w", orderID, ErrNotFound)
			}
			return err
		}

		var items []models.SalesItem
		if err := tx.Where("sales_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.Model(&models.CompleteItem{}).Where("id = ?", item.CompleteItemID).
				Updates(map[string]interface{}{"in_stock": true, "updated_by": actor}).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("sales_id = ?", orderID).Delete(&models.SalesItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SalesInfo{}).Where("id = ?", orderID).
			Updates(map[string]interface{}{"status": "cancelled", "deleted_by": actor}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SalesInfo{}, orderID).Error; err != nil {
			return err
		}

		return helpers.InsertTransactionHistory(tx, order.OrderNo,
			"deleted", "delivery_order", fmt.Sprintf("%d items restored to stock", len(items)), actor)
	})
}

// CreateReturn mirrors CreateDeliveryOrder for customer returns.
func (r *SalesRepository) CreateReturn(ctx context.Context, customerID uint, lines []SalesLineForm, remarks string, actor int) (*models.ReturnInfo, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("no items given: %w", ErrValidation)
	}

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotFound)
		}
		return nil, err
	}

	ret := models.ReturnInfo{CustomerID: customerID, Remarks: remarks, CreatedBy: actor}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ret).Error; err != nil {
			return err
		}
		ret.ReturnNo = fmt.Sprintf("RET-%d", ret.ID)
		if err := tx.Model(&models.ReturnInfo{}).Where("id = ?", ret.ID).
			Update("return_no", ret.ReturnNo).Error; err != nil {
			return err
		}

		var amount, weight float64
		var bags int
		for _, line := range lines {
			summary, err := validateBarcode(tx, line.Barcode)
			if err != nil {
				return err
			}

			total := line.UnitPrice * summary.Weight
			item := models.ReturnItem{
				ReturnID:       ret.ID,
				CompleteItemID: summary.CompleteItemID,
				Barcode:        summary.Barcode,
				BundleType:     summary.BundleType,
				Weight:         summary.Weight,
				Bags:           summary.Bags,
				UnitPrice:      line.UnitPrice,
				Total:          total,
				CreatedBy:      actor,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.CompleteItem{}).Where("id = ?", summary.CompleteItemID).
				Updates(map[string]interface{}{"in_stock": false, "updated_by": actor}).Error; err != nil {
				return err
			}

			amount += total
			weight += summary.Weight
			bags += summary.Bags
			ret.Items = append(ret.Items, item)
		}

		if err := tx.Model(&models.ReturnInfo{}).Where("id = ?", ret.ID).Updates(map[string]interface{}{
			"total_amount": amount,
			"total_weight": weight,
			"total_bags":   bags,
		}).Error; err != nil {
			return err
		}
		ret.TotalAmount = amount
		ret.TotalWeight = weight
		ret.TotalBags = bags

		return helpers.InsertTransactionHistory(tx, ret.ReturnNo,
			"created", "return", fmt.Sprintf("%d items returned", len(lines)), actor)
	})
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// DeleteReturn is the bulk undo for a return: the header is soft-deleted and
// every claimed barcode becomes validatable again.
func (r *SalesRepository) DeleteReturn(ctx context.Context, returnID types.SnowflakeID, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ret models.ReturnInfo
		if err := tx.First(&ret, returnID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("return %d: %w", returnID, ErrNotFound)
			}
			return err
		}

		var items []models.ReturnItem
		if err := tx.Where("return_id = ?", returnID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			if err := tx.Model(&models.CompleteItem{}).Where("id = ?", item.CompleteItemID).
				Updates(map[string]interface{}{"in_stock": true, "updated_by": actor}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.ReturnInfo{}).Where("id = ?", returnID).
			Updates(map[string]interface{}{"status": "cancelled", "deleted_by": actor}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ReturnInfo{}, returnID).Error; err != nil {
			return err
		}

		return helpers.InsertTransactionHistory(tx, ret.ReturnNo,
			"deleted", "return", fmt.Sprintf("%d items released", len(items)), actor)
	})
}

func (r *SalesRepository) GetDeliveryOrder(ctx context.Context, orderID types.SnowflakeID) (*models.SalesInfo, error) {
	var order models.SalesInfo
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("delivery order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (r *SalesRepository) ListDeliveryOrders(ctx context.Context) ([]models.SalesInfo, error) {
	var orders []models.SalesInfo
	if err := r.db.WithContext(ctx).Order("id desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SalesRepository) ListReturns(ctx context.Context) ([]models.ReturnInfo, error) {
	var returns []models.ReturnInfo
	if err := r.db.WithContext(ctx).Order("id desc").Find(&returns).Error; err != nil {
		return nil, err
	}
	return returns, nil
}
