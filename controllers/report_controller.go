package controllers

import (
	"fmt"
	"net/http"

	"packflow/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// ExportStockRegister dumps the stock units to an Excel sheet. Pass
// ?available=true to restrict to pickable rolls.
func (c *ReportController) ExportStockRegister(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.StockUnit{}).Order("id")
	if ctx.Query("available") == "true" {
		query = query.Where("available = ?", true)
	}

	var units []models.StockUnit
	if err := query.Find(&units).Error; err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Barcode")
	f.SetCellValue(sheet, "B1", "Source")
	f.SetCellValue(sheet, "C1", "Size")
	f.SetCellValue(sheet, "D1", "GSM")
	f.SetCellValue(sheet, "E1", "Net Weight")
	f.SetCellValue(sheet, "F1", "Available")
	f.SetCellValue(sheet, "G1", "Used")

	for i, unit := range units {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), unit.Barcode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), unit.SourceType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), unit.Size)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), unit.Gsm)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), unit.NetWeight)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), unit.Available)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), unit.UsedFlag)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock_register.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}

// ExportBatchRegister dumps the material batches with their ledger totals.
func (c *ReportController) ExportBatchRegister(ctx *fiber.Ctx) error {
	var batches []models.MaterialBatch
	if err := c.DB.Order("id").Find(&batches).Error; err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Batch ID")
	f.SetCellValue(sheet, "B1", "Supplier ID")
	f.SetCellValue(sheet, "C1", "Total Reels")
	f.SetCellValue(sheet, "D1", "Total Net Weight")
	f.SetCellValue(sheet, "E1", "Total Gross Weight")
	f.SetCellValue(sheet, "F1", "Status")
	f.SetCellValue(sheet, "G1", "Created At")

	for i, batch := range batches {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), batch.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), batch.SupplierID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), batch.TotalReels)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), batch.TotalNetWeight)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), batch.TotalGrossWeight)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), batch.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), batch.CreatedAt.Format("2006-01-02 15:04"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="batch_register.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}

// ExportDeliveryOrders dumps the active delivery orders with totals.
func (c *ReportController) ExportDeliveryOrders(ctx *fiber.Ctx) error {
	var orders []models.SalesInfo
	if err := c.DB.Order("id").Find(&orders).Error; err != nil {
		return respondError(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Order No")
	f.SetCellValue(sheet, "B1", "Customer ID")
	f.SetCellValue(sheet, "C1", "Total Amount")
	f.SetCellValue(sheet, "D1", "Total Weight")
	f.SetCellValue(sheet, "E1", "Total Bags")
	f.SetCellValue(sheet, "F1", "Status")
	f.SetCellValue(sheet, "G1", "Created At")

	for i, order := range orders {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), order.OrderNo)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), order.CustomerID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), order.TotalAmount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), order.TotalWeight)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), order.TotalBags)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), order.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), order.CreatedAt.Format("2006-01-02 15:04"))
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="delivery_orders.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}
	return nil
}
