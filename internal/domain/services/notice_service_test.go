package services

import (
	"errors"
	"testing"
	"time"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
)

func seedNotice(t *testing.T, svc InterfaceNoticeService, title string, category models.NoticeCategory) *models.Notice {
	t.Helper()
	notice := &models.Notice{
		Title:    title,
		Content:  "content of " + title,
		Category: category,
		PostedBy: 1,
	}
	if err := svc.CreateNotice(notice); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}
	return notice
}

func TestGetAllNoticesFilterAndSearch(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	seedNotice(t, svc, "Water Shutdown", models.NoticeCategoryMaintenance)
	seedNotice(t, svc, "Diwali Party", models.NoticeCategoryEvents)
	seedNotice(t, svc, "Gate Repairs", models.NoticeCategoryMaintenance)

	tests := []struct {
		name     string
		category models.NoticeCategory
		search   string
		want     int
	}{
		{"all", "", "", 3},
		{"all keyword", "all", "", 3},
		{"category", models.NoticeCategoryMaintenance, "", 2},
		{"search title case-insensitive", "", "WATER", 1},
		{"search content", "", "content of diwali", 1},
		{"category and search", models.NoticeCategoryMaintenance, "gate", 1},
		{"no match", models.NoticeCategoryEvents, "water", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetAllNotices(tt.category, tt.search)
			if err != nil {
				t.Fatalf("GetAllNotices failed: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("rows = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestGetAllNoticesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	older := seedNotice(t, svc, "older", models.NoticeCategoryGeneral)
	db.Model(older).Update("created_at", time.Now().Add(-time.Hour))
	newer := seedNotice(t, svc, "newer", models.NoticeCategoryGeneral)

	notices, err := svc.GetAllNotices("", "")
	if err != nil {
		t.Fatalf("GetAllNotices failed: %v", err)
	}
	if len(notices) != 2 || notices[0].ID != newer.ID {
		t.Fatalf("notices not newest-first: %+v", notices)
	}
}

func TestUpdateNoticeClearsAttachments(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	imageURL := "http://host/uploads/notices/images/a.png"
	notice := &models.Notice{
		Title:       "with files",
		Content:     "body",
		Category:    models.NoticeCategoryGeneral,
		PostedBy:    1,
		ImageURL:    &imageURL,
		Attachments: models.NewPDFAttachment("http://host/uploads/notices/pdfs/b.pdf", "b.pdf"),
	}
	if err := svc.CreateNotice(notice); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}

	// Neither a new file nor a keep-signal clears both attachments
	updated, err := svc.UpdateNotice(notice.ID, "with files", "body", models.NoticeCategoryGeneral, nil, nil)
	if err != nil {
		t.Fatalf("UpdateNotice failed: %v", err)
	}
	if updated.ImageURL != nil {
		t.Fatalf("image_url = %q, want cleared", *updated.ImageURL)
	}
	if updated.AttachmentURL() != "" {
		t.Fatalf("attachments = %q, want cleared", updated.AttachmentURL())
	}
}

func TestUpdateNoticeReplacesImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	oldURL := "http://host/uploads/notices/images/old.png"
	notice := &models.Notice{
		Title: "n", Content: "c", Category: models.NoticeCategoryGeneral,
		PostedBy: 1, ImageURL: &oldURL,
	}
	if err := svc.CreateNotice(notice); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}

	newURL := "http://host/uploads/notices/images/new.png"
	updated, err := svc.UpdateNotice(notice.ID, "n", "c", models.NoticeCategoryGeneral, &newURL, nil)
	if err != nil {
		t.Fatalf("UpdateNotice failed: %v", err)
	}
	if updated.ImageURL == nil || *updated.ImageURL != newURL {
		t.Fatalf("image_url = %v, want %q", updated.ImageURL, newURL)
	}
}

func TestDeleteNotice(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	notice := seedNotice(t, svc, "gone soon", models.NoticeCategorySecurity)
	if err := svc.DeleteNotice(notice.ID); err != nil {
		t.Fatalf("DeleteNotice failed: %v", err)
	}
	if _, err := svc.GetNoticeByID(notice.ID); !errors.Is(err, ErrNoticeNotFound) {
		t.Fatalf("error = %v, want ErrNoticeNotFound", err)
	}
	if err := svc.DeleteNotice(notice.ID); !errors.Is(err, ErrNoticeNotFound) {
		t.Fatalf("second delete error = %v, want ErrNoticeNotFound", err)
	}
}

func TestReferencedAttachmentFilenames(t *testing.T) {
	db := newTestDB(t)
	svc := NewNoticeService(db, newTestConfig(t))

	imageURL := "http://host/uploads/notices/images/keeper.png"
	notice := &models.Notice{
		Title: "n", Content: "c", Category: models.NoticeCategoryGeneral,
		PostedBy:    1,
		ImageURL:    &imageURL,
		Attachments: models.NewPDFAttachment("http://host/uploads/notices/pdfs/doc.pdf", "doc.pdf"),
	}
	if err := svc.CreateNotice(notice); err != nil {
		t.Fatalf("CreateNotice failed: %v", err)
	}
	seedNotice(t, svc, "bare", models.NoticeCategoryGeneral)

	referenced, err := svc.ReferencedAttachmentFilenames()
	if err != nil {
		t.Fatalf("ReferencedAttachmentFilenames failed: %v", err)
	}
	if _, ok := referenced["keeper.png"]; !ok {
		t.Fatalf("keeper.png not referenced: %v", referenced)
	}
	if _, ok := referenced["doc.pdf"]; !ok {
		t.Fatalf("doc.pdf not referenced: %v", referenced)
	}
	if len(referenced) != 2 {
		t.Fatalf("referenced set size = %d, want 2", len(referenced))
	}
}
