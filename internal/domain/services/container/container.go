package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// ServiceContainer manages dependency injection for all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Core services
	jwtService     services.InterfaceJWTService
	redisService   services.InterfaceRedisService
	storageService services.InterfaceStorageService

	// Business services
	userService        services.InterfaceUserService
	noticeService      services.InterfaceNoticeService
	visitorService     services.InterfaceVisitorService
	maintenanceService services.InterfaceMaintenanceService
	chatService        services.InterfaceChatService

	// Scheduled jobs
	sweepService services.InterfaceSweepService

	mu sync.RWMutex
}

// NewServiceContainer creates and wires the service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)
	c.storageService = services.NewStorageService(c.config)

	c.userService = services.NewUserService(c.db, c.config)
	c.noticeService = services.NewNoticeService(c.db, c.config)
	c.visitorService = services.NewVisitorService(c.db, c.config)
	c.maintenanceService = services.NewMaintenanceService(c.db, c.config)
	c.chatService = services.NewChatService(c.db, c.config)

	c.sweepService = services.NewSweepService(c.config, c.visitorService, c.noticeService, c.storageService)

	if err := c.redisService.Ping(); err != nil {
		config.Warning("redis connection test failed: %v, response caching falls back to memory", err)
	}
}

// GetService returns the service registered under a name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "storage":
		return c.storageService
	case "user":
		return c.userService
	case "notice":
		return c.noticeService
	case "visitor":
		return c.visitorService
	case "maintenance":
		return c.maintenanceService
	case "chat":
		return c.chatService
	case "sweep":
		return c.sweepService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
