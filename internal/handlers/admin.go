package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/models"
)

// AdminHandler manages admin-only endpoints.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// DashboardStats returns aggregate statistics for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalProducts int64
	if err := h.db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return err
	}

	var totalCollections int64
	if err := h.db.Model(&models.Collection{}).Count(&totalCollections).Error; err != nil {
		return err
	}

	var totalTestimonials int64
	if err := h.db.Model(&models.Testimonial{}).Count(&totalTestimonials).Error; err != nil {
		return err
	}

	var totalBlogPosts int64
	if err := h.db.Model(&models.BlogPost{}).Count(&totalBlogPosts).Error; err != nil {
		return err
	}

	// Products per occasion
	type occasionCount struct {
		Occasion string `json:"occasion"`
		Count    int64  `json:"count"`
	}
	var occasionCounts []occasionCount
	if err := h.db.Model(&models.Product{}).
		Select("occasion, count(*) as count").
		Group("occasion").
		Scan(&occasionCounts).Error; err != nil {
		return err
	}

	productsByOccasion := make(map[string]int64)
	for _, oc := range occasionCounts {
		productsByOccasion[oc.Occasion] = oc.Count
	}

	// Actual product membership per collection name. Shown next to the
	// manually entered Collection.Count so operators can spot drift; the
	// stored count itself is never touched.
	type collectionCount struct {
		CollectionName string `json:"collection_name"`
		Count          int64  `json:"count"`
	}
	var collectionCounts []collectionCount
	if err := h.db.Model(&models.Product{}).
		Select("collection_name, count(*) as count").
		Group("collection_name").
		Scan(&collectionCounts).Error; err != nil {
		return err
	}

	productsByCollection := make(map[string]int64)
	for _, cc := range collectionCounts {
		productsByCollection[cc.CollectionName] = cc.Count
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_products":         totalProducts,
			"total_collections":      totalCollections,
			"total_testimonials":     totalTestimonials,
			"total_blog_posts":       totalBlogPosts,
			"products_by_occasion":   productsByOccasion,
			"products_by_collection": productsByCollection,
		},
	})
}
