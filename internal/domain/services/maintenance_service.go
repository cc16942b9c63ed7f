package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// ErrRequestNotFound means the referenced maintenance request does not exist
var ErrRequestNotFound = errors.New("maintenance request not found")

// MaintenanceFilter narrows the request list; empty fields mean no filter
type MaintenanceFilter struct {
	Category models.MaintenanceCategory
	Status   string
	Priority models.MaintenancePriority
}

// InterfaceMaintenanceService defines the maintenance request service
type InterfaceMaintenanceService interface {
	CreateRequest(req *models.MaintenanceRequest) error
	GetAllRequests(filter MaintenanceFilter, page, limit int) ([]models.MaintenanceRequest, error)
	GetRequestByID(id uint) (*models.MaintenanceRequest, error)
	UpdateRequest(id uint, status, assignedTo *string, updatedBy uint) (*models.MaintenanceRequest, error)
	SubmitFeedback(requestID uint, rating int, comment string) (*models.MaintenanceRequestFeedback, error)
}

// MaintenanceService provides maintenance request CRUD with the audit trail
type MaintenanceService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, cfg *config.Config) InterfaceMaintenanceService {
	return &MaintenanceService{DB: db, Config: cfg}
}

// CreateRequest persists a resident-filed request; priority defaults medium,
// status stays NULL until the first staff update
func (s *MaintenanceService) CreateRequest(req *models.MaintenanceRequest) error {
	if req.Priority == "" {
		req.Priority = models.MaintenancePriorityMedium
	}
	return s.DB.Create(req).Error
}

// GetAllRequests lists requests newest-first. Filters are exact-match and
// AND-combined; page/limit <= 0 means the full result.
func (s *MaintenanceService) GetAllRequests(filter MaintenanceFilter, page, limit int) ([]models.MaintenanceRequest, error) {
	query := s.DB.Model(&models.MaintenanceRequest{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	query = query.Order("request_date DESC")
	if page > 0 && limit > 0 {
		query = query.Limit(limit).Offset((page - 1) * limit)
	}

	var requests []models.MaintenanceRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestByID fetches a single request
func (s *MaintenanceService) GetRequestByID(id uint) (*models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	if err := s.DB.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// UpdateRequest applies a staff status/assignment change and appends the
// audit row in the same transaction, so every successful update leaves
// exactly one audit entry.
func (s *MaintenanceService) UpdateRequest(id uint, status, assignedTo *string, updatedBy uint) (*models.MaintenanceRequest, error) {
	var updated models.MaintenanceRequest

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var req models.MaintenanceRequest
		if err := tx.First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		updates := make(map[string]interface{})
		if status != nil {
			updates["status"] = *status
		}
		if assignedTo != nil {
			updates["assigned_to"] = *assignedTo
		}
		if err := tx.Model(&req).Updates(updates).Error; err != nil {
			return err
		}

		audit := models.MaintenanceRequestUpdate{
			RequestID:  id,
			UpdatedBy:  updatedBy,
			Status:     status,
			AssignedTo: assignedTo,
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SubmitFeedback records resident feedback. No uniqueness is enforced;
// multiple feedback rows per request are allowed.
func (s *MaintenanceService) SubmitFeedback(requestID uint, rating int, comment string) (*models.MaintenanceRequestFeedback, error) {
	if _, err := s.GetRequestByID(requestID); err != nil {
		return nil, err
	}

	feedback := &models.MaintenanceRequestFeedback{
		RequestID: requestID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.DB.Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
