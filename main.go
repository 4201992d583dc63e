package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"furniture-shop/config"
	_ "furniture-shop/docs"
	"furniture-shop/libs"
	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/routes"
	"furniture-shop/services"
	"furniture-shop/utils"
)

// @title Furniro Storefront API
// @version 1.0
// @description Commerce state engine for the Furniro storefront
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	utils.RegisterValidators()

	var medium repositories.StorageMedium
	if models.RedisClient != nil {
		medium = repositories.NewRedisStorage(models.RedisClient)
	} else {
		medium = repositories.NewMemoryBackend().Open()
	}

	orderStore := libs.NewOrderStore(config.AppConfig.OrderStoreURL)
	mailRelay := libs.NewMailRelay(config.AppConfig.MailRelayURL)
	sessions := services.NewSessionManager(medium, orderStore, mailRelay, config.AppConfig.CheckoutStepTimeout)
	catalog := services.NewCatalogService(libs.NewHTTPCatalog(config.AppConfig.CatalogURL))

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, sessions, catalog)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
