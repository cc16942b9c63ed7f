// @title           Society Backend API
// @version         1.0
// @description     Residential-community management backend: accounts, notices, visitor pre-approvals, maintenance requests and chat

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/praveen-sripati/society-backend/internal/app/routes"
	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/database"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		// Environment variables may already be set by the deployment
		config.Warning("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.DB

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: migration mode is drop, all tables will be recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	r, serviceContainer := routes.SetupRouter(db, cfg)

	sweepService := serviceContainer.GetService("sweep").(services.InterfaceSweepService)
	if err := sweepService.Start(); err != nil {
		log.Fatalf("failed to start sweep scheduler: %v", err)
	}
	defer sweepService.Stop()

	config.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
	if err := r.Run("0.0.0.0:" + cfg.ServerPort); err != nil {
		config.Error("server exited: %v", err)
		os.Exit(1)
	}
}

// migratedModels lists every persisted model in dependency order
func migratedModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Notice{},
		&models.PreApproval{},
		&models.VisitorActivity{},
		&models.MaintenanceRequest{},
		&models.MaintenanceRequestUpdate{},
		&models.MaintenanceRequestFeedback{},
		&models.Group{},
		&models.GroupMembership{},
		&models.Message{},
	}
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(migratedModels()...)
}

func dropAndRecreateTables(db *gorm.DB) error {
	ms := migratedModels()
	// Drop in reverse dependency order
	for i := len(ms) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(ms[i]); err != nil {
			return err
		}
	}
	return db.AutoMigrate(ms...)
}
