package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/catalog"
	"github.com/example/lookbook/internal/models"
)

// StorefrontHandler serves the public lookbook reads.
type StorefrontHandler struct {
	db *gorm.DB
}

// NewStorefrontHandler constructs StorefrontHandler.
func NewStorefrontHandler(db *gorm.DB) *StorefrontHandler {
	return &StorefrontHandler{db: db}
}

// ListProducts returns the visible subset of the catalog for the requested
// collection selector and facet values. The whole catalog is loaded in its
// ingestion order and narrowed in memory; the inventory is boutique sized.
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Order("created_at asc").Find(&products).Error; err != nil {
		return err
	}

	selection := catalog.SelectionFromValues(
		c.Query("occasion"),
		c.Query("style"),
		c.Query("size"),
		c.Query("budget"),
	)

	visible := catalog.Visible(products, c.Query("collection"), selection)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    visible,
		"meta": fiber.Map{
			"total_items":   len(products),
			"visible_items": len(visible),
		},
	})
}

// GetProduct returns one product by its human-assigned code, case-sensitive.
func (h *StorefrontHandler) GetProduct(c *fiber.Ctx) error {
	code := c.Params("code")

	var product models.Product
	if err := h.db.First(&product, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// ListCollections returns all collections for the featured grid.
func (h *StorefrontHandler) ListCollections(c *fiber.Ctx) error {
	var collections []models.Collection
	if err := h.db.Order("created_at asc").Find(&collections).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": collections})
}
