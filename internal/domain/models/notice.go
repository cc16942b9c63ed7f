package models

import (
	"time"

	"gorm.io/datatypes"
)

// NoticeCategory classifies a notice
type NoticeCategory string

const (
	NoticeCategoryMaintenance NoticeCategory = "maintenance"
	NoticeCategoryEvents      NoticeCategory = "events"
	NoticeCategorySecurity    NoticeCategory = "security"
	NoticeCategoryGeneral     NoticeCategory = "general"
)

// PDFAttachment is the structured metadata stored for a notice's single PDF
type PDFAttachment struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Notice represents a community announcement. At most one image and one PDF
// attachment exist per notice; their physical files follow the row's
// lifecycle best-effort (the row is authoritative).
type Notice struct {
	ID          uint                                      `gorm:"primaryKey" json:"id"`
	Title       string                                    `gorm:"type:varchar(200);not null" json:"title"`
	Content     string                                    `gorm:"type:text;not null" json:"content"`
	Category    NoticeCategory                            `gorm:"type:varchar(20);not null;index" json:"category"`
	PostedBy    uint                                      `gorm:"not null;index" json:"posted_by"`
	ImageURL    *string                                   `gorm:"type:varchar(500)" json:"image_url"`
	Attachments *datatypes.JSONType[PDFAttachment]        `json:"attachments"`
	CreatedAt   time.Time                                 `json:"created_at"`
	UpdatedAt   time.Time                                 `json:"updated_at"`

	Poster *User `gorm:"foreignKey:PostedBy" json:"poster,omitempty"`
}

// ValidNoticeCategory reports whether the category is one of the fixed set
func ValidNoticeCategory(c NoticeCategory) bool {
	switch c {
	case NoticeCategoryMaintenance, NoticeCategoryEvents, NoticeCategorySecurity, NoticeCategoryGeneral:
		return true
	}
	return false
}

// NewPDFAttachment wraps attachment metadata for storage as a JSON column
func NewPDFAttachment(url, filename string) *datatypes.JSONType[PDFAttachment] {
	v := datatypes.NewJSONType(PDFAttachment{URL: url, Filename: filename})
	return &v
}

// AttachmentURL returns the stored PDF URL, or "" when no PDF is attached
func (n *Notice) AttachmentURL() string {
	if n.Attachments == nil {
		return ""
	}
	return n.Attachments.Data().URL
}

// AttachmentFilename returns the stored PDF filename, or "" when no PDF is attached
func (n *Notice) AttachmentFilename() string {
	if n.Attachments == nil {
		return ""
	}
	return n.Attachments.Data().Filename
}
