package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"furniture-shop/config"
	"furniture-shop/libs"
	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/routes"
	"furniture-shop/services"
	"furniture-shop/utils"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		models.InitRedis()
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

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, sessions, catalog)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
