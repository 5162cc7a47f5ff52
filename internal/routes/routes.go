package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/example/lookbook/internal/config"
	"github.com/example/lookbook/internal/handlers"
	"github.com/example/lookbook/internal/middleware"
	"github.com/example/lookbook/internal/services"
	"github.com/example/lookbook/internal/whatsapp"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	composer := whatsapp.NewComposer(whatsapp.BusinessInfo{
		Name:      cfg.BusinessName,
		Tagline:   cfg.BusinessTagline,
		Instagram: cfg.BusinessInstagram,
		Website:   cfg.BusinessWebsite,
	})

	authHandler := handlers.NewAuthHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db)
	storefrontHandler := handlers.NewStorefrontHandler(db)
	productHandler := handlers.NewProductHandler(db, cache)
	collectionHandler := handlers.NewCollectionHandler(db, cache)
	contentHandler := handlers.NewContentHandler(db)
	inquiryHandler := handlers.NewInquiryHandler(db, composer, cfg.WhatsAppNumber, telegramService)
	uploadHandler := handlers.NewUploadHandler(cfg)

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Public storefront routes
	storefront := api.Group("/storefront", middleware.CatalogCache(cache, 5*time.Minute))
	storefront.Get("/products", storefrontHandler.ListProducts)
	storefront.Get("/products/:code", storefrontHandler.GetProduct)
	storefront.Get("/collections", storefrontHandler.ListCollections)
	storefront.Get("/testimonials", contentHandler.ListTestimonials)
	storefront.Get("/blog-posts", contentHandler.ListBlogPosts)

	// Inquiry routes (compose message, return deep link)
	inquiries := api.Group("/inquiries")
	inquiryHandler.RegisterInquiryRoutes(inquiries)

	// Protected admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg))

	admin.Get("/stats", adminHandler.DashboardStats)
	admin.Post("/uploads", uploadHandler.UploadImage)

	products := admin.Group("/products")
	productHandler.RegisterProductRoutes(products)

	collections := admin.Group("/collections")
	collections.Get("/", collectionHandler.ListCollections)
	collections.Post("/", collectionHandler.CreateCollection)
	collections.Get("/:id", collectionHandler.GetCollection)
	collections.Put("/:id", collectionHandler.UpdateCollection)
	collections.Delete("/:id", collectionHandler.DeleteCollection)

	testimonials := admin.Group("/testimonials")
	testimonials.Get("/", contentHandler.ListTestimonials)
	testimonials.Post("/", contentHandler.CreateTestimonial)
	testimonials.Put("/:id", contentHandler.UpdateTestimonial)
	testimonials.Delete("/:id", contentHandler.DeleteTestimonial)

	blogPosts := admin.Group("/blog-posts")
	blogPosts.Get("/", contentHandler.ListBlogPosts)
	blogPosts.Post("/", contentHandler.CreateBlogPost)
	blogPosts.Put("/:id", contentHandler.UpdateBlogPost)
	blogPosts.Delete("/:id", contentHandler.DeleteBlogPost)
}
