package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
)

func TestRunExpirySweep(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	visitors := NewVisitorService(db, cfg)
	notices := NewNoticeService(db, cfg)
	storage := NewStorageService(cfg)
	sweep := NewSweepService(cfg, visitors, notices, storage)

	overdue := seedPreApproval(t, visitors, "overdue", time.Now().Add(-time.Hour), models.PreApprovalStatusPending)

	sweep.RunExpirySweep()

	pa, err := visitors.GetPreApprovalByID(overdue.ID)
	if err != nil {
		t.Fatalf("GetPreApprovalByID failed: %v", err)
	}
	if pa.Status != models.PreApprovalStatusExpired {
		t.Fatalf("status = %q, want expired", pa.Status)
	}
}

func TestRunRetentionSweep(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig(t)
	visitors := NewVisitorService(db, cfg)
	notices := NewNoticeService(db, cfg)
	storage := NewStorageService(cfg)
	sweep := NewSweepService(cfg, visitors, notices, storage)

	stale := seedPreApproval(t, visitors, "stale", time.Now().Add(-48*time.Hour), models.PreApprovalStatusExpired)
	fresh := seedPreApproval(t, visitors, "fresh", time.Now(), models.PreApprovalStatusPending)

	// One referenced file and one orphan under the uploads tree
	imgDir := filepath.Join(cfg.UploadDir, "notices", "images")
	if err := os.MkdirAll(imgDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"kept.png", "orphan.png"} {
		if err := os.WriteFile(filepath.Join(imgDir, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	keptURL := "http://host/uploads/notices/images/kept.png"
	notice := &models.Notice{Title: "n", Content: "c", Category: models.NoticeCategoryGeneral, PostedBy: 1, ImageURL: &keptURL}
	if err := notices.CreateNotice(notice); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}

	sweep.RunRetentionSweep()

	if _, err := visitors.GetPreApprovalByID(stale.ID); !errors.Is(err, ErrPreApprovalNotFound) {
		t.Fatalf("stale pre-approval survived, error = %v", err)
	}
	if _, err := visitors.GetPreApprovalByID(fresh.ID); err != nil {
		t.Fatalf("fresh pre-approval deleted: %v", err)
	}
	if _, err := os.Stat(filepath.Join(imgDir, "kept.png")); err != nil {
		t.Fatalf("referenced file removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(imgDir, "orphan.png")); !os.IsNotExist(err) {
		t.Fatal("orphan file survived the sweep")
	}
}

func TestSweepStartBadTimezone(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.CronTimezone = "Not/AZone"
	sweep := NewSweepService(cfg, nil, nil, nil)

	if err := sweep.Start(); err == nil {
		t.Fatal("Start accepted an invalid timezone")
	}
}
