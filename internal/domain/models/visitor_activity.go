package models

import "time"

// VisitorActivity is the security-desk log of an actual visit. A row is
// created on check-in; departure fields are filled exactly once on check-out.
type VisitorActivity struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	PreApprovalID         uint       `gorm:"not null;index" json:"pre_approval_id"`
	VisitorName           string     `gorm:"type:varchar(100);not null" json:"visitor_name"`
	ArrivalTime           time.Time  `gorm:"not null;index" json:"arrival_time"`
	SecurityGuardCheckin  uint       `gorm:"not null" json:"security_guard_checkin"`
	DepartureTime         *time.Time `gorm:"index" json:"departure_time"`
	SecurityGuardCheckout *uint      `json:"security_guard_checkout"`
	CreatedAt             time.Time  `json:"created_at"`

	PreApproval *PreApproval `gorm:"foreignKey:PreApprovalID" json:"pre_approval,omitempty"`
}

// VisitorActivityRecord is an activity row joined with its pre-approval's
// visitor name and apartment number, the shape the list endpoints return.
type VisitorActivityRecord struct {
	VisitorActivity
	PreApprovalVisitorName string `json:"pre_approval_visitor_name"`
	ApartmentNumber        string `json:"apartment_number"`
}
