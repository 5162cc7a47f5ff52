package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/middleware"
	"github.com/example/lookbook/internal/models"
)

// CollectionHandler manages admin collection CRUD.
//
// Collection.Count is stored exactly as entered: it is a manually maintained
// number and is deliberately not reconciled against product membership.
type CollectionHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewCollectionHandler constructs CollectionHandler.
func NewCollectionHandler(db *gorm.DB, cache *redis.Client) *CollectionHandler {
	return &CollectionHandler{db: db, cache: cache}
}

// ListCollections returns all collections.
func (h *CollectionHandler) ListCollections(c *fiber.Ctx) error {
	var collections []models.Collection
	if err := h.db.Order("created_at asc").Find(&collections).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": collections})
}

// GetCollection returns a single collection by storage ID.
func (h *CollectionHandler) GetCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var collection models.Collection
	if err := h.db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "collection not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": collection})
}

// CreateCollection persists a new collection.
func (h *CollectionHandler) CreateCollection(c *fiber.Ctx) error {
	var payload models.Collection
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if payload.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	if err := h.db.Create(&payload).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateCollection updates an existing collection. Renaming does not cascade
// into products referencing the old name.
func (h *CollectionHandler) UpdateCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var collection models.Collection
	if err := h.db.First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "collection not found")
		}
		return err
	}

	if err := c.BodyParser(&collection); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	collection.ID = id

	if err := h.db.Save(&collection).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.JSON(fiber.Map{"success": true, "data": collection})
}

// DeleteCollection removes a collection. Products keep their (now dangling)
// collection name reference.
func (h *CollectionHandler) DeleteCollection(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.Collection{}, "id = ?", id).Error; err != nil {
		return err
	}

	middleware.InvalidateCatalogCache(h.cache)

	return c.SendStatus(fiber.StatusNoContent)
}
