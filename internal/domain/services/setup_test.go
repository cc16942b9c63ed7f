package services

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// newTestDB opens a throwaway sqlite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "society.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestConfig builds a config without touching the environment
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ServerPort:         "3000",
		JWTSecretKey:       "test-secret",
		UploadDir:          t.TempDir(),
		MaxUploadSizeMB:    10,
		CronTimezone:       "Asia/Kolkata",
		RetentionCutoffHrs: 24,
	}
}
