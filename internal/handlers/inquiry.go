package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/models"
	"github.com/example/lookbook/internal/services"
	"github.com/example/lookbook/internal/whatsapp"
)

// InquiryHandler composes WhatsApp messages and hands back ready deep links.
// Composition is pure; the only side effects here are catalog lookups and the
// fire-and-forget owner notifications.
type InquiryHandler struct {
	db       *gorm.DB
	composer *whatsapp.Composer
	number   string
	telegram *services.TelegramService
}

// NewInquiryHandler constructs InquiryHandler.
func NewInquiryHandler(db *gorm.DB, composer *whatsapp.Composer, number string, telegram *services.TelegramService) *InquiryHandler {
	return &InquiryHandler{db: db, composer: composer, number: number, telegram: telegram}
}

func (h *InquiryHandler) respond(c *fiber.Ctx, message string, mobile bool) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"message": message,
			"link":    whatsapp.Link(h.number, message, mobile),
		},
	})
}

func (h *InquiryHandler) findProduct(code string) (models.Product, error) {
	var product models.Product
	err := h.db.First(&product, "code = ?", code).Error
	return product, err
}

type deviceRequest struct {
	Mobile bool `json:"mobile"`
}

// GeneralInquiry backs the hero CTA and the floating button.
func (h *InquiryHandler) GeneralInquiry(c *fiber.Ctx) error {
	var req deviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return h.respond(c, h.composer.GeneralInquiry(), req.Mobile)
}

type productInquiryRequest struct {
	Code   string `json:"code"`
	Mobile bool   `json:"mobile"`
}

// ProductInquiry composes the detailed interest message for one product.
func (h *InquiryHandler) ProductInquiry(c *fiber.Ctx) error {
	var req productInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.findProduct(req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := h.telegram.NotifyInquiry(services.InquiryNotification{
		Kind:         "product",
		ProductCode:  product.Code,
		ProductTitle: product.Title,
		PriceRange:   product.PriceRange,
	}); err != nil {
		log.Warn().Err(err).Msg("inquiry notification failed")
	}

	return h.respond(c, h.composer.ProductInquiry(product.Code, product.Title, product.PriceRange), req.Mobile)
}

// QuickInquiry composes the one-line availability question.
func (h *InquiryHandler) QuickInquiry(c *fiber.Ctx) error {
	var req productInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.findProduct(req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return h.respond(c, h.composer.QuickInquiry(product.Code, product.Title), req.Mobile)
}

type bulkInquiryRequest struct {
	Codes  []string `json:"codes"`
	Mobile bool     `json:"mobile"`
}

// BulkInquiry composes one message covering several products.
func (h *InquiryHandler) BulkInquiry(c *fiber.Ctx) error {
	var req bulkInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if len(req.Codes) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "codes are required")
	}

	var products []models.Product
	if err := h.db.Where("code IN ?", req.Codes).Order("created_at asc").Find(&products).Error; err != nil {
		return err
	}
	if len(products) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "no matching products")
	}

	refs := make([]whatsapp.ProductRef, 0, len(products))
	for _, p := range products {
		refs = append(refs, whatsapp.ProductRef{Code: p.Code, Title: p.Title})
	}

	return h.respond(c, h.composer.BulkInquiry(refs), req.Mobile)
}

type collectionInquiryRequest struct {
	Name   string `json:"name"`
	Mobile bool   `json:"mobile"`
}

// CollectionInquiry composes the collection interest message, using the
// stored (manually maintained) piece count when the collection is known.
func (h *InquiryHandler) CollectionInquiry(c *fiber.Ctx) error {
	var req collectionInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	count := 0
	var collection models.Collection
	if err := h.db.First(&collection, "name = ?", req.Name).Error; err == nil {
		count = collection.Count
	}

	return h.respond(c, h.composer.CollectionInquiry(req.Name, count), req.Mobile)
}

type leadRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Size     string `json:"size"`
	Budget   string `json:"budget"`
	Occasion string `json:"occasion"`
	Style    string `json:"style"`
	Notes    string `json:"notes"`
	Mobile   bool   `json:"mobile"`
}

// Lead composes the personalized-recommendations message and notifies the
// owner. The payload is never persisted.
func (h *InquiryHandler) Lead(c *fiber.Ctx) error {
	var req leadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	lead := whatsapp.Lead{
		Name:     req.Name,
		Phone:    req.Phone,
		Size:     req.Size,
		Budget:   req.Budget,
		Occasion: req.Occasion,
		Style:    req.Style,
		Notes:    req.Notes,
	}

	if err := h.telegram.NotifyLead(services.LeadNotification{
		Name:     req.Name,
		Phone:    req.Phone,
		Size:     req.Size,
		Budget:   req.Budget,
		Occasion: req.Occasion,
		Style:    req.Style,
		Notes:    req.Notes,
	}); err != nil {
		log.Warn().Err(err).Msg("lead notification failed")
	}

	return h.respond(c, h.composer.LeadMessage(lead), req.Mobile)
}

type preferencesRequest struct {
	Size   string `json:"size"`
	Budget string `json:"budget"`
	Mobile bool   `json:"mobile"`
}

// Preferences composes the short size-and-budget question.
func (h *InquiryHandler) Preferences(c *fiber.Ctx) error {
	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return h.respond(c, h.composer.PreferencesInquiry(req.Size, req.Budget), req.Mobile)
}

type orderRequest struct {
	Code     string `json:"code"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Pincode  string `json:"pincode"`
	Notes    string `json:"notes"`
	Mobile   bool   `json:"mobile"`
}

// Order composes the order placement message. Orders travel over WhatsApp;
// nothing is persisted here.
func (h *InquiryHandler) Order(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	product, err := h.findProduct(req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := h.telegram.NotifyInquiry(services.InquiryNotification{
		Kind:         "order",
		ProductCode:  product.Code,
		ProductTitle: product.Title,
		PriceRange:   product.PriceRange,
	}); err != nil {
		log.Warn().Err(err).Msg("order notification failed")
	}

	return h.respond(c, h.composer.OrderMessage(whatsapp.Order{
		ProductCode:  product.Code,
		ProductTitle: product.Title,
		Size:         req.Size,
		Quantity:     req.Quantity,
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Pincode:      req.Pincode,
		Notes:        req.Notes,
	}), req.Mobile)
}

type serviceRequest struct {
	Code      string `json:"code"`
	OrderCode string `json:"order_code"`
	Reason    string `json:"reason"`
	Occasion  string `json:"occasion"`
	Budget    string `json:"budget"`
	Count     int    `json:"count"`
	Name      string `json:"name"`
	Mobile    bool   `json:"mobile"`
}

// Service composes the customer-service and special-request variants, chosen
// by the :kind route parameter.
func (h *InquiryHandler) Service(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	var message string
	switch c.Params("kind") {
	case "store-visit":
		message = h.composer.StoreVisitInquiry()
	case "catalog-request":
		message = h.composer.CatalogRequest(req.Name)
	case "custom-measurement":
		product, err := h.findProduct(req.Code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "product not found")
			}
			return err
		}
		message = h.composer.CustomMeasurementRequest(product.Code, product.Title)
	case "order-status":
		message = h.composer.OrderStatusInquiry(req.OrderCode)
	case "return":
		message = h.composer.ReturnRequest(req.OrderCode, req.Reason)
	case "sizing-help":
		message = h.composer.SizingHelp(req.Code)
	case "care":
		message = h.composer.CareInstructions(req.Code)
	case "styling":
		message = h.composer.StylingRequest(req.Occasion, req.Budget)
	case "bulk-order":
		message = h.composer.BulkOrderInquiry(req.Count, req.Occasion)
	case "gift-wrapping":
		message = h.composer.GiftWrappingInquiry(req.Code)
	default:
		return fiber.NewError(fiber.StatusNotFound, "unknown inquiry kind")
	}

	return h.respond(c, message, req.Mobile)
}

// RegisterInquiryRoutes attaches inquiry routes.
func (h *InquiryHandler) RegisterInquiryRoutes(router fiber.Router) {
	router.Post("/general", h.GeneralInquiry)
	router.Post("/product", h.ProductInquiry)
	router.Post("/quick", h.QuickInquiry)
	router.Post("/bulk", h.BulkInquiry)
	router.Post("/collection", h.CollectionInquiry)
	router.Post("/lead", h.Lead)
	router.Post("/preferences", h.Preferences)
	router.Post("/order", h.Order)
	router.Post("/service/:kind", h.Service)
}
