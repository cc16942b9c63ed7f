package models

import "time"

// Group is a chat group. Direct-message groups carry a canonical DirectKey
// derived from the two participant ids; its unique index guarantees at most
// one direct group per unordered participant pair without constraining
// ordinary group names. DirectKey is NULL for non-direct groups.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	CreatedBy   uint      `gorm:"not null;index" json:"created_by"`
	IsDirect    bool      `gorm:"not null;default:false" json:"is_direct"`
	DirectKey   *string   `gorm:"type:varchar(50);uniqueIndex" json:"-"`
	CreatedAt   time.Time `json:"created_at"`

	Creator  *User             `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Members  []GroupMembership `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Messages []Message         `gorm:"foreignKey:GroupID" json:"messages,omitempty"`
}

// GroupMembership links a user to a group. Rows are only created for the two
// participants of a direct-message group; non-direct membership is unmanaged.
type GroupMembership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_group" json:"user_id"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_user_group" json:"group_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Message is immutable once created. ReplyToID is a weak reference parsed
// from an "@messageN" token in the content; the referenced message is not
// checked for existence and no foreign key backs it.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SenderID  uint      `gorm:"not null;index" json:"sender_id"`
	GroupID   *uint     `gorm:"index" json:"group_id"`
	ReplyToID *uint     `json:"reply_to_id"`
	MediaURL  *string   `gorm:"type:varchar(500)" json:"media_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Sender *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}
