package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/catalog"
	"github.com/example/lookbook/internal/middleware"
	"github.com/example/lookbook/internal/models"
	"github.com/example/lookbook/internal/utils"
)

// ProductHandler manages admin product CRUD.
type ProductHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB, cache *redis.Client) *ProductHandler {
	return &ProductHandler{db: db, cache: cache}
}

// ListProducts returns paginated products with optional admin-side filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{})

	if v := c.Query("collection"); v != "" {
		query = query.Where("collection_name = ?", v)
	}

	if v := c.Query("occasion"); v != "" {
		query = query.Where("occasion = ?", v)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("title ILIKE ? OR code ILIKE ?", q, q)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at asc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct loads a product by storage ID.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

type productRequest struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Collection  string   `json:"collection"`
	PriceRange  string   `json:"price_range"`
	Sizes       []string `json:"sizes"`
	Occasion    string   `json:"occasion"`
	Style       string   `json:"style"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Fabric      string   `json:"fabric"`
	Fit         string   `json:"fit"`
	Care        string   `json:"care"`
	Stock       string   `json:"stock"`
	Description string   `json:"description"`
}

func buildProductFromRequest(req productRequest) (models.Product, error) {
	if req.Code == "" || req.Title == "" {
		return models.Product{}, errors.New("code and title are required")
	}
	if len(req.Sizes) == 0 {
		return models.Product{}, errors.New("at least one size is required")
	}

	product := models.Product{
		Code:           req.Code,
		Title:          req.Title,
		CollectionName: req.Collection,
		PriceRange:     req.PriceRange,
		Sizes:          req.Sizes,
		Occasion:       req.Occasion,
		Style:          req.Style,
		Image:          req.Image,
		Images:         req.Images,
		Fabric:         req.Fabric,
		Fit:            req.Fit,
		Care:           req.Care,
		Stock:          req.Stock,
		Description:    req.Description,
	}

	if len(product.Images) == 0 && product.Image != "" {
		product.Images = []string{product.Image}
	}

	// Structured bounds are derived once at ingestion; the display text stays
	// as entered. Rows that defeat parsing keep zero bounds and are called out
	// so operators can fix them.
	minPrice, maxPrice, err := catalog.PriceBounds(req.PriceRange)
	if err != nil {
		log.Warn().
			Str("code", req.Code).
			Str("price_range", req.PriceRange).
			Msg("price range yields no structured bounds, budget filtering will skip this product")
	} else {
		product.MinPrice = minPrice
		product.MaxPrice = maxPrice
	}

	return product, nil
}

// CreateProduct handles product creation.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct replaces an existing product's fields.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var existing models.Product
	if err := h.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := buildProductFromRequest(req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	if err := h.db.Save(&product).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterProductRoutes attaches product routes to the admin group.
func (h *ProductHandler) RegisterProductRoutes(router fiber.Router) {
	router.Get("/", h.ListProducts)
	router.Get("/:id", h.GetProduct)
	router.Post("/", h.CreateProduct)
	router.Put("/:id", h.UpdateProduct)
	router.Delete("/:id", h.DeleteProduct)
}
