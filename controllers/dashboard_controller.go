package controllers

import (
	"packflow/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetSummary returns the landing-page counters.
func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	db := c.DB.WithContext(ctx.UserContext())

	var openBatches, availableStock, openJobCards, bundles, deliveryOrders, returns int64

	if err := db.Model(&models.MaterialBatch{}).Where("status = ?", "open").Count(&openBatches).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := db.Model(&models.StockUnit{}).Where("available = ?", true).Count(&availableStock).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := db.Model(&models.JobCard{}).Count(&openJobCards).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := db.Model(&models.Bundle{}).Count(&bundles).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := db.Model(&models.SalesInfo{}).Where("status = ?", "active").Count(&deliveryOrders).Error; err != nil {
		return respondError(ctx, err)
	}
	if err := db.Model(&models.ReturnInfo{}).Where("status = ?", "active").Count(&returns).Error; err != nil {
		return respondError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dashboard summary", "data": fiber.Map{
		"open_batches":    openBatches,
		"available_stock": availableStock,
		"job_cards":       openJobCards,
		"bundles":         bundles,
		"delivery_orders": deliveryOrders,
		"returns":         returns,
	}})
}

// GetRecentActivity lists the latest transaction history events.
func (c *DashboardController) GetRecentActivity(ctx *fiber.Ctx) error {
	var events []models.TransactionHistory
	if err := c.DB.WithContext(ctx.UserContext()).Order("id desc").Limit(50).Find(&events).Error; err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Recent activity", "data": events})
}
