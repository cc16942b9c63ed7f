package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role classifies what a user account is allowed to do
type Role string

const (
	RoleResident  Role = "resident"
	RoleCommittee Role = "committee"
	RoleAdmin     Role = "admin"
	RoleSecurity  Role = "security"
)

// User represents a resident or staff account. Apartment and mobile numbers
// are immutable after registration; there is no edit endpoint.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ApartmentNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"apartment_number"`
	MobileNumber    string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"mobile_number"`
	PasswordHash    string    `gorm:"type:varchar(100);not null" json:"-"`
	Role            Role      `gorm:"type:varchar(20);not null;default:resident" json:"role"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserSummary is the shape returned by /users/me
type UserSummary struct {
	ID              uint   `json:"id"`
	ApartmentNumber string `json:"apartment_number"`
	MobileNumber    string `json:"mobile_number"`
	Role            Role   `json:"role"`
}

// BeforeSave hashes the password if a plaintext one was assigned. A bcrypt
// hash is always 60 bytes, so anything shorter is treated as plaintext.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.PasswordHash != "" && len(u.PasswordHash) < 60 {
		hashed, err := HashPassword(u.PasswordHash)
		if err != nil {
			return err
		}
		u.PasswordHash = hashed
	}
	return nil
}

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plaintext password against a bcrypt hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidRole reports whether the role is one of the fixed set
func ValidRole(r Role) bool {
	switch r {
	case RoleResident, RoleCommittee, RoleAdmin, RoleSecurity:
		return true
	}
	return false
}
