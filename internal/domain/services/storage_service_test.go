package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUniqueFilename(t *testing.T) {
	got := UniqueFilename("report.pdf")
	if !strings.HasPrefix(got, "report-") || !strings.HasSuffix(got, ".pdf") {
		t.Fatalf("UniqueFilename(report.pdf) = %q", got)
	}
	if got == UniqueFilename("report.pdf") {
		t.Fatal("two calls produced the same filename")
	}
	if got := UniqueFilename(".pdf"); !strings.HasPrefix(got, "file-") {
		t.Fatalf("empty base name not defaulted: %q", got)
	}
}

func TestFilePathFromURL(t *testing.T) {
	cfg := newTestConfig(t)
	svc := &StorageService{Config: cfg}

	tests := []struct {
		name   string
		url    string
		wantOK bool
		want   string
	}{
		{"image url", "http://host/uploads/notices/images/a.png", true, filepath.Join(cfg.UploadDir, "notices", "images", "a.png")},
		{"pdf url", "https://host:8080/uploads/notices/pdfs/b.pdf", true, filepath.Join(cfg.UploadDir, "notices", "pdfs", "b.pdf")},
		{"outside uploads", "http://host/static/a.png", false, ""},
		{"traversal", "http://host/uploads/../etc/passwd", false, ""},
		{"nested traversal", "http://host/uploads/notices/../../secret", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.filePathFromURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeleteFileByURL(t *testing.T) {
	cfg := newTestConfig(t)
	svc := &StorageService{Config: cfg}

	dir := filepath.Join(cfg.UploadDir, "notices", "images")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "a.png")
	if err := os.WriteFile(target, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	svc.DeleteFileByURL("http://host/uploads/notices/images/a.png")
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("file still exists after delete")
	}

	// A second delete of the now-missing file must not panic or error out
	svc.DeleteFileByURL("http://host/uploads/notices/images/a.png")
	svc.DeleteFileByURL("not a url at all")
}

func TestSweepOrphans(t *testing.T) {
	cfg := newTestConfig(t)
	svc := &StorageService{Config: cfg}

	imgDir := filepath.Join(cfg.UploadDir, "notices", "images")
	pdfDir := filepath.Join(cfg.UploadDir, "notices", "pdfs")
	for _, d := range []string{imgDir, pdfDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{
		filepath.Join(imgDir, "kept.png"),
		filepath.Join(imgDir, "orphan.png"),
		filepath.Join(pdfDir, "orphan.pdf"),
	} {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := svc.SweepOrphans(map[string]struct{}{"kept.png": {}})
	if err != nil {
		t.Fatalf("SweepOrphans failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if _, err := os.Stat(filepath.Join(imgDir, "kept.png")); err != nil {
		t.Fatalf("referenced file was removed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(imgDir, "orphan.png")); !os.IsNotExist(err) {
		t.Fatal("orphan image survived the sweep")
	}
}

func TestSweepOrphansMissingTree(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.UploadDir = filepath.Join(cfg.UploadDir, "does-not-exist")
	svc := &StorageService{Config: cfg}

	removed, err := svc.SweepOrphans(map[string]struct{}{})
	if err != nil || removed != 0 {
		t.Fatalf("SweepOrphans on missing tree = (%d, %v), want (0, nil)", removed, err)
	}
}
