package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// ErrNoticeNotFound means the referenced notice does not exist
var ErrNoticeNotFound = errors.New("notice not found")

// InterfaceNoticeService defines the notice service
type InterfaceNoticeService interface {
	CreateNotice(notice *models.Notice) error
	GetAllNotices(category models.NoticeCategory, search string) ([]models.Notice, error)
	GetNoticeByID(id uint) (*models.Notice, error)
	UpdateNotice(id uint, title, content string, category models.NoticeCategory, imageURL *string, attachments *datatypes.JSONType[models.PDFAttachment]) (*models.Notice, error)
	DeleteNotice(id uint) error
	ReferencedAttachmentFilenames() (map[string]struct{}, error)
}

// NoticeService provides notice CRUD against the store
type NoticeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewNoticeService creates a new notice service
func NewNoticeService(db *gorm.DB, cfg *config.Config) InterfaceNoticeService {
	return &NoticeService{DB: db, Config: cfg}
}

// CreateNotice persists a new notice
func (s *NoticeService) CreateNotice(notice *models.Notice) error {
	return s.DB.Create(notice).Error
}

// GetAllNotices lists notices newest-first, optionally filtered by category
// ("all" and "" mean no filter) and case-insensitive substring search across
// title and content.
func (s *NoticeService) GetAllNotices(category models.NoticeCategory, search string) ([]models.Notice, error) {
	query := s.DB.Model(&models.Notice{})

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var notices []models.Notice
	if err := query.Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

// GetNoticeByID fetches a single notice
func (s *NoticeService) GetNoticeByID(id uint) (*models.Notice, error) {
	var notice models.Notice
	if err := s.DB.First(&notice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

// UpdateNotice overwrites the mutable fields of a notice. Attachment columns
// are written unconditionally so a nil value clears them; deleting the old
// physical file is the caller's best-effort concern.
func (s *NoticeService) UpdateNotice(id uint, title, content string, category models.NoticeCategory, imageURL *string, attachments *datatypes.JSONType[models.PDFAttachment]) (*models.Notice, error) {
	notice, err := s.GetNoticeByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":      title,
		"content":    content,
		"category":   category,
		"updated_at": time.Now(),
	}
	if imageURL != nil {
		updates["image_url"] = *imageURL
	} else {
		updates["image_url"] = nil
	}
	if attachments != nil {
		updates["attachments"] = *attachments
	} else {
		updates["attachments"] = nil
	}

	if err := s.DB.Model(notice).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetNoticeByID(id)
}

// DeleteNotice removes the notice row
func (s *NoticeService) DeleteNotice(id uint) error {
	result := s.DB.Delete(&models.Notice{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoticeNotFound
	}
	return nil
}

// ReferencedAttachmentFilenames collects the bare filenames of every image
// and PDF still referenced by a notice row, for the orphan-file sweep.
func (s *NoticeService) ReferencedAttachmentFilenames() (map[string]struct{}, error) {
	var notices []models.Notice
	if err := s.DB.Select("image_url", "attachments").Find(&notices).Error; err != nil {
		return nil, err
	}

	referenced := make(map[string]struct{}, len(notices))
	for i := range notices {
		if url := notices[i].ImageURL; url != nil && *url != "" {
			referenced[baseName(*url)] = struct{}{}
		}
		if url := notices[i].AttachmentURL(); url != "" {
			referenced[baseName(url)] = struct{}{}
		}
	}
	return referenced, nil
}

func baseName(fileURL string) string {
	if idx := strings.LastIndex(fileURL, "/"); idx >= 0 {
		return fileURL[idx+1:]
	}
	return fileURL
}
