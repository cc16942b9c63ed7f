package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

var (
	// ErrDuplicateUser means the mobile or apartment number is already registered
	ErrDuplicateUser = errors.New("mobile number or apartment number already registered")
	// ErrInvalidCredentials covers both unknown mobile number and password
	// mismatch so callers cannot enumerate accounts
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound means the referenced user no longer exists
	ErrUserNotFound = errors.New("user not found")
)

// InterfaceUserService defines the user account service
type InterfaceUserService interface {
	RegisterResident(apartmentNumber, mobileNumber, password string) (*models.User, error)
	Login(mobileNumber, password string) (*models.User, error)
	GetUserSummary(id uint) (*models.UserSummary, error)
}

// UserService provides account registration and authentication
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{DB: db, Config: cfg}
}

// RegisterResident creates a resident account. All self-registered users get
// the resident role; other roles are provisioned out-of-band. The unique
// indexes on mobile/apartment close the check-then-insert race.
func (s *UserService) RegisterResident(apartmentNumber, mobileNumber, password string) (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).
		Where("mobile_number = ? OR apartment_number = ?", mobileNumber, apartmentNumber).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	user := &models.User{
		ApartmentNumber: apartmentNumber,
		MobileNumber:    mobileNumber,
		PasswordHash:    password, // hashed by the BeforeSave hook
		Role:            models.RoleResident,
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the account. Unknown mobile numbers
// and hash mismatches are indistinguishable to the caller.
func (s *UserService) Login(mobileNumber, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("mobile_number = ?", mobileNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !models.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserSummary returns the caller-facing projection of a user
func (s *UserService) GetUserSummary(id uint) (*models.UserSummary, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &models.UserSummary{
		ID:              user.ID,
		ApartmentNumber: user.ApartmentNumber,
		MobileNumber:    user.MobileNumber,
		Role:            user.Role,
	}, nil
}
