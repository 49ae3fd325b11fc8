package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"luxe-store-api/internal/config"
	"luxe-store-api/internal/controller"
	"luxe-store-api/internal/imagehost"
	"luxe-store-api/internal/middleware"
	"luxe-store-api/internal/rabbit"
	"luxe-store-api/internal/repository"
	"luxe-store-api/internal/service"
)

func main() {
	// .env local es opcional
	if err := godotenv.Load(); err != nil {
		log.Println("Sin archivo .env, usando variables de entorno")
	}
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Conexión a RabbitMQ (confirmaciones de orden)
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}
	notifier, err := rabbit.NewPublisher(ch)
	if err != nil {
		log.Fatalf("Error declarando exchange: %v", err)
	}

	// Repositorios
	catalogRepo := repository.NewMongoCatalogRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	shippingRepo := repository.NewMongoShippingRepository(db)
	contentRepo := repository.NewMongoContentRepository(db)
	messageRepo := repository.NewMongoMessageRepository(db)
	txRunner := repository.NewMongoTxRunner(client)

	// Colaboradores externos
	images := imagehost.NewClient(cfg.ImageHostURL, cfg.ImageHostKey)

	// Servicios
	checkoutService := service.NewCheckoutService(catalogRepo, shippingRepo, orderRepo, txRunner, notifier)
	orderService := service.NewOrderService(orderRepo)
	catalogService := service.NewCatalogService(catalogRepo, images)
	shippingService := service.NewShippingService(shippingRepo)
	contentService := service.NewContentService(contentRepo, images)
	messageService := service.NewMessageService(messageRepo)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash)

	// Handlers
	orderCtl := controller.NewOrderController(checkoutService, orderService)
	catalogCtl := controller.NewCatalogController(catalogService, images)
	shippingCtl := controller.NewShippingController(shippingService)
	contentCtl := controller.NewContentController(contentService, messageService)
	authCtl := controller.NewAuthController(authService)

	// Router
	r := gin.Default()

	// Rutas públicas (storefront)
	r.GET("/products", catalogCtl.List)
	r.GET("/products/:productId", catalogCtl.Get)
	r.GET("/home", contentCtl.GetHome)
	r.GET("/our-story", contentCtl.GetOurStory)
	r.GET("/faqs", contentCtl.ListFAQs)
	r.GET("/shipping-price", shippingCtl.Get)
	r.POST("/contact", contentCtl.CreateMessage)
	r.POST("/orders", orderCtl.PlaceOrder)
	r.GET("/orders/track/:token", orderCtl.Track)

	r.POST("/admin/login", authCtl.Login)
	r.POST("/admin/logout", authCtl.Logout)

	// Rutas admin (requieren cookie de sesión)
	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(authService))

	admin.GET("/me", authCtl.Me)

	admin.GET("/orders", orderCtl.List)
	admin.GET("/orders/:orderId", orderCtl.Get)
	admin.PATCH("/orders/:orderId/status", orderCtl.UpdateStatus)
	admin.PATCH("/orders/:orderId/payment", orderCtl.UpdatePaymentStatus)
	admin.PATCH("/orders/:orderId/tracking", orderCtl.UpdateTracking)
	admin.DELETE("/orders/:orderId", orderCtl.Delete)

	admin.POST("/products", catalogCtl.Create)
	admin.PUT("/products/:productId", catalogCtl.Update)
	admin.DELETE("/products/:productId", catalogCtl.Delete)
	admin.POST("/images", catalogCtl.UploadImage)

	admin.PUT("/shipping-price", shippingCtl.Set)
	admin.PUT("/home", contentCtl.SaveHome)
	admin.PUT("/our-story", contentCtl.SaveOurStory)
	admin.POST("/faqs", contentCtl.CreateFAQ)
	admin.PUT("/faqs/:faqId", contentCtl.UpdateFAQ)
	admin.DELETE("/faqs/:faqId", contentCtl.DeleteFAQ)
	admin.GET("/messages", contentCtl.ListMessages)
	admin.DELETE("/messages/:messageId", contentCtl.DeleteMessage)

	// Ejecutar servidor
	log.Printf("Luxe Store API ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
