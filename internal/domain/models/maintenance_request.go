package models

import "time"

// MaintenanceCategory classifies a maintenance request
type MaintenanceCategory string

const (
	MaintenanceCategoryPlumbing   MaintenanceCategory = "plumbing"
	MaintenanceCategoryElectrical MaintenanceCategory = "electrical"
	MaintenanceCategoryCarpentry  MaintenanceCategory = "carpentry"
	MaintenanceCategoryAppliance  MaintenanceCategory = "appliance"
	MaintenanceCategoryOther      MaintenanceCategory = "other"
)

// MaintenancePriority orders requests by urgency
type MaintenancePriority string

const (
	MaintenancePriorityHigh   MaintenancePriority = "high"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityLow    MaintenancePriority = "low"
)

// MaintenanceRequest is a resident-filed repair request. Status is free-form,
// staff-set, and NULL until the first committee/admin update.
type MaintenanceRequest struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	ResidentID      uint                `gorm:"not null;index" json:"resident_id"`
	ApartmentNumber string              `gorm:"type:varchar(20);not null" json:"apartment_number"`
	Category        MaintenanceCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	Description     string              `gorm:"type:text;not null" json:"description"`
	LocationDetails string              `gorm:"type:varchar(200)" json:"location_details"`
	Priority        MaintenancePriority `gorm:"type:varchar(10);not null;default:medium;index" json:"priority"`
	Status          *string             `gorm:"type:varchar(50);index" json:"status"`
	AssignedTo      *string             `gorm:"type:varchar(100)" json:"assigned_to"`
	RequestDate     time.Time           `gorm:"autoCreateTime;index" json:"request_date"`

	Resident *User                       `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	Updates  []MaintenanceRequestUpdate  `gorm:"foreignKey:RequestID" json:"updates,omitempty"`
}

// MaintenanceRequestUpdate is the immutable audit row appended on every
// successful staff update.
type MaintenanceRequestUpdate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RequestID  uint      `gorm:"not null;index" json:"request_id"`
	UpdatedBy  uint      `gorm:"not null" json:"updated_by"`
	Status     *string   `gorm:"type:varchar(50)" json:"status"`
	AssignedTo *string   `gorm:"type:varchar(100)" json:"assigned_to"`
	CreatedAt  time.Time `json:"created_at"`
}

// MaintenanceRequestFeedback is resident feedback on a completed request.
// Multiple rows per request are structurally allowed.
type MaintenanceRequestFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID uint      `gorm:"not null;index" json:"request_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidMaintenanceCategory reports whether the category is one of the fixed set
func ValidMaintenanceCategory(c MaintenanceCategory) bool {
	switch c {
	case MaintenanceCategoryPlumbing, MaintenanceCategoryElectrical,
		MaintenanceCategoryCarpentry, MaintenanceCategoryAppliance, MaintenanceCategoryOther:
		return true
	}
	return false
}

// ValidMaintenancePriority reports whether the priority is one of the fixed set
func ValidMaintenancePriority(p MaintenancePriority) bool {
	switch p {
	case MaintenancePriorityHigh, MaintenancePriorityMedium, MaintenancePriorityLow:
		return true
	}
	return false
}
