package models

import "time"

// PreApprovalStatus tracks a pre-approval through its server-maintained state
// machine: pending -> checked_in (arrival) or pending -> expired (sweep).
// There is no API transition out of checked_in or expired.
type PreApprovalStatus string

const (
	PreApprovalStatusPending   PreApprovalStatus = "pending"
	PreApprovalStatusCheckedIn PreApprovalStatus = "checked_in"
	PreApprovalStatusExpired   PreApprovalStatus = "expired"
)

// PreApproval is a resident-submitted record of an expected visitor
type PreApproval struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	ResidentID      uint              `gorm:"not null;index" json:"resident_id"`
	VisitorName     string            `gorm:"type:varchar(100);not null" json:"visitor_name"`
	ArrivalTime     time.Time         `gorm:"not null;index" json:"arrival_time"`
	DepartureTime   *time.Time        `json:"departure_time"`
	Purpose         string            `gorm:"type:varchar(200)" json:"purpose"`
	ApartmentNumber string            `gorm:"type:varchar(20);not null" json:"apartment_number"`
	Status          PreApprovalStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Resident *User `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
}
