package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/app/controllers"
	"github.com/praveen-sripati/society-backend/internal/app/middleware"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// SetupRouter builds the configured gin engine and its service container
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	// CORS with credentials so the session cookie survives browser requests
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg)
	middleware.InitCacheMiddleware(serviceContainer.GetService("redis").(services.InterfaceRedisService))

	// Stored notice attachments are served straight from the uploads tree
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r, serviceContainer
}

// registerRoutes configures all API routes
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes reachable without a session cookie
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	// 10 requests per second per IP, bursts of 20
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container))
	api.GET("/health", controllers.HandleHealthFunc(container))

	api.POST("/users/register/resident", controllers.HandleUserFunc(container, "registerResident"))
	api.POST("/users/login", controllers.HandleUserFunc(container, "login"))
}

// registerAuthenticatedRoutes registers routes behind the session cookie
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := api.Group("")
	auth.Use(middleware.Authentication())

	auth.GET("/users/me", controllers.HandleUserFunc(container, "me"))
	auth.POST("/users/logout", controllers.HandleUserFunc(container, "logout"))

	noticeCache := middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second})
	notices := auth.Group("/notices")
	notices.POST("", controllers.HandleNoticeFunc(container, "createNotice"))
	notices.GET("", noticeCache, controllers.HandleNoticeFunc(container, "getNotices"))
	notices.GET("/:id", noticeCache, controllers.HandleNoticeFunc(container, "getNotice"))
	notices.PUT("/:id", controllers.HandleNoticeFunc(container, "updateNotice"))
	notices.DELETE("/:id", controllers.HandleNoticeFunc(container, "deleteNotice"))

	visitors := auth.Group("/visitor-pre-approvals")
	visitors.POST("", controllers.HandleVisitorFunc(container, "createPreApproval"))
	visitors.GET("", controllers.HandleVisitorFunc(container, "getPreApprovals"))
	visitors.GET("/paginated", controllers.HandleVisitorFunc(container, "getPaginatedPreApprovals"))
	visitors.GET("/paginated/upcoming", controllers.HandleVisitorFunc(container, "getUpcomingPreApprovals"))
	visitors.GET("/paginated/expired", controllers.HandleVisitorFunc(container, "getExpiredPreApprovals"))
	visitors.POST("/arrivals", controllers.HandleVisitorFunc(container, "createArrival"))
	visitors.GET("/arrivals", controllers.HandleVisitorFunc(container, "getArrivals"))
	visitors.GET("/arrivals/paginated", controllers.HandleVisitorFunc(container, "getArrivalsPaginated"))
	visitors.PUT("/departures/:arrivalId", controllers.HandleVisitorFunc(container, "createDeparture"))
	visitors.GET("/departures", controllers.HandleVisitorFunc(container, "getDepartures"))
	visitors.GET("/departures/paginated", controllers.HandleVisitorFunc(container, "getDeparturesPaginated"))
	visitors.GET("/activity/:residentId", controllers.HandleVisitorFunc(container, "getResidentActivity"))
	visitors.GET("/:id", controllers.HandleVisitorFunc(container, "getPreApproval"))
	visitors.PUT("/:id", controllers.HandleVisitorFunc(container, "updatePreApproval"))
	visitors.DELETE("/:id", controllers.HandleVisitorFunc(container, "deletePreApproval"))

	maintenance := auth.Group("/maintenance-requests")
	maintenance.POST("", controllers.HandleMaintenanceFunc(container, "createRequest"))
	maintenance.GET("", controllers.HandleMaintenanceFunc(container, "getRequests"))
	maintenance.GET("/:id", controllers.HandleMaintenanceFunc(container, "getRequest"))
	maintenance.PUT("/:id", controllers.HandleMaintenanceFunc(container, "updateRequest"))
	maintenance.POST("/:id/feedback", controllers.HandleMaintenanceFunc(container, "submitFeedback"))

	chat := auth.Group("/chat")
	chat.POST("/groups", controllers.HandleChatFunc(container, "createGroup"))
	chat.GET("/groups", controllers.HandleChatFunc(container, "getGroups"))
	chat.GET("/groups/:id", controllers.HandleChatFunc(container, "getGroup"))
	chat.POST("/messages", controllers.HandleChatFunc(container, "sendMessage"))
	chat.GET("/messages", controllers.HandleChatFunc(container, "getMessages"))
	chat.GET("/messages/:id", controllers.HandleChatFunc(container, "getMessage"))
}
