package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

const (
	noticeImageDir = "notices/images"
	noticePDFDir   = "notices/pdfs"
)

// InterfaceStorageService defines the file intake and lifecycle service.
// Database rows are authoritative; physical files are eventually consistent
// with them, so every deletion here is best-effort.
type InterfaceStorageService interface {
	SaveNoticeImage(fh *multipart.FileHeader) (string, error)
	SaveNoticePDF(fh *multipart.FileHeader) (string, error)
	NoticeImageURL(scheme, host, filename string) string
	NoticePDFURL(scheme, host, filename string) string
	DeleteFileByURL(fileURL string)
	SweepOrphans(referenced map[string]struct{}) (int, error)
}

// StorageService persists notice attachments under the uploads tree
type StorageService struct {
	Config *config.Config
}

// NewStorageService creates a new storage service
func NewStorageService(cfg *config.Config) InterfaceStorageService {
	return &StorageService{Config: cfg}
}

// SaveNoticeImage stores an uploaded image and returns its stored filename
func (s *StorageService) SaveNoticeImage(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, noticeImageDir)
}

// SaveNoticePDF stores an uploaded PDF and returns its stored filename
func (s *StorageService) SaveNoticePDF(fh *multipart.FileHeader) (string, error) {
	return s.save(fh, noticePDFDir)
}

func (s *StorageService) save(fh *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.Config.UploadDir, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := UniqueFilename(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filename, nil
}

// NoticeImageURL builds the public URL for a stored image from the request's
// protocol and host
func (s *StorageService) NoticeImageURL(scheme, host, filename string) string {
	return fmt.Sprintf("%s://%s/uploads/%s/%s", scheme, host, noticeImageDir, filename)
}

// NoticePDFURL builds the public URL for a stored PDF
func (s *StorageService) NoticePDFURL(scheme, host, filename string) string {
	return fmt.Sprintf("%s://%s/uploads/%s/%s", scheme, host, noticePDFDir, filename)
}

// DeleteFileByURL removes the physical file a public URL points at. A missing
// file is not an error; any other failure is logged and swallowed because the
// enclosing request has already succeeded.
func (s *StorageService) DeleteFileByURL(fileURL string) {
	filePath, ok := s.filePathFromURL(fileURL)
	if !ok {
		config.Warning("could not resolve local path for file URL %q", fileURL)
		return
	}

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			config.Warning("file already absent: %s", filePath)
			return
		}
		config.Error("failed to delete file %s: %v", filePath, err)
	}
}

// filePathFromURL maps a public upload URL onto the local uploads tree
func (s *StorageService) filePathFromURL(fileURL string) (string, bool) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", false
	}

	// Public URLs serve the uploads tree under /uploads
	rel, found := strings.CutPrefix(parsed.Path, "/uploads/")
	if !found {
		return "", false
	}

	// Reject anything trying to walk out of the uploads tree
	clean := path.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}

	return filepath.Join(s.Config.UploadDir, filepath.FromSlash(clean)), true
}

// SweepOrphans removes files under the notices upload tree whose filenames are
// not in the referenced set (keys are bare filenames). It returns how many
// files were removed. Run from the daily sweep; the database is authoritative.
func (s *StorageService) SweepOrphans(referenced map[string]struct{}) (int, error) {
	removed := 0
	for _, subdir := range []string{noticeImageDir, noticePDFDir} {
		dir := filepath.Join(s.Config.UploadDir, filepath.FromSlash(subdir))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if _, ok := referenced[entry.Name()]; ok {
				continue
			}
			target := filepath.Join(dir, entry.Name())
			if err := os.Remove(target); err != nil {
				config.Error("orphan sweep failed to delete %s: %v", target, err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}

// UniqueFilename keeps the original base name and extension but inserts a
// random suffix so repeated uploads never collide
func UniqueFilename(original string) string {
	ext := filepath.Ext(original)
	name := strings.TrimSuffix(filepath.Base(original), ext)
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("%s-%s%s", name, uuid.NewString(), ext)
}
