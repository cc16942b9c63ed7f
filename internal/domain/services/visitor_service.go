package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

var (
	// ErrPreApprovalNotFound means the referenced pre-approval does not exist
	ErrPreApprovalNotFound = errors.New("pre-approval not found")
	// ErrArrivalNotFound means the referenced arrival record does not exist
	ErrArrivalNotFound = errors.New("visitor arrival record not found")
	// ErrAlreadyCheckedOut means a departure was already recorded for the arrival
	ErrAlreadyCheckedOut = errors.New("visitor has already been checked out")
)

// InterfaceVisitorService defines the pre-approval and activity service
type InterfaceVisitorService interface {
	CreatePreApproval(pa *models.PreApproval) error
	GetAllPreApprovals() ([]models.PreApproval, error)
	GetPaginatedPreApprovals(q models.PaginationQuery, status models.PreApprovalStatus) ([]models.PreApproval, int64, error)
	GetPreApprovalByID(id uint) (*models.PreApproval, error)
	UpdatePreApproval(id uint, pa *models.PreApproval) (*models.PreApproval, error)
	DeletePreApproval(id uint) error

	CreateArrival(preApprovalID uint, visitorName string, securityGuardID uint) (*models.VisitorActivity, error)
	CreateDeparture(arrivalID uint, securityGuardID uint) (*models.VisitorActivity, error)
	GetArrivals(date string, q models.PaginationQuery) ([]models.VisitorActivityRecord, int64, error)
	GetDepartures(date string, q models.PaginationQuery) ([]models.VisitorActivityRecord, int64, error)
	GetVisitorActivityForResident(residentID uint) ([]models.VisitorActivityRecord, error)

	ExpireOverduePreApprovals(now time.Time) (int64, error)
	DeleteStalePreApprovals(cutoff time.Time) (int64, error)
}

// VisitorService provides pre-approval CRUD, check-in/out and the sweeps
type VisitorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisitorService creates a new visitor service
func NewVisitorService(db *gorm.DB, cfg *config.Config) InterfaceVisitorService {
	return &VisitorService{DB: db, Config: cfg}
}

// CreatePreApproval persists a new pre-approval; status defaults to pending
func (s *VisitorService) CreatePreApproval(pa *models.PreApproval) error {
	if pa.Status == "" {
		pa.Status = models.PreApprovalStatusPending
	}
	return s.DB.Create(pa).Error
}

// GetAllPreApprovals lists every pre-approval ordered by arrival time
func (s *VisitorService) GetAllPreApprovals() ([]models.PreApproval, error) {
	var pas []models.PreApproval
	if err := s.DB.Order("arrival_time").Find(&pas).Error; err != nil {
		return nil, err
	}
	return pas, nil
}

// GetPaginatedPreApprovals returns one page plus the matching total count.
// An empty status means no filter; pending sorts soonest-first, expired
// most-recent-first, matching how the dashboards consume them.
func (s *VisitorService) GetPaginatedPreApprovals(q models.PaginationQuery, status models.PreApprovalStatus) ([]models.PreApproval, int64, error) {
	q.Normalize()

	filtered := func() *gorm.DB {
		query := s.DB.Model(&models.PreApproval{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query
	}

	order := "arrival_time ASC"
	if status == models.PreApprovalStatusExpired {
		order = "arrival_time DESC"
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pas []models.PreApproval
	if err := filtered().Order(order).Limit(q.Limit).Offset(q.Offset()).Find(&pas).Error; err != nil {
		return nil, 0, err
	}
	return pas, total, nil
}

// GetPreApprovalByID fetches a single pre-approval
func (s *VisitorService) GetPreApprovalByID(id uint) (*models.PreApproval, error) {
	var pa models.PreApproval
	if err := s.DB.First(&pa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreApprovalNotFound
		}
		return nil, err
	}
	return &pa, nil
}

// UpdatePreApproval overwrites the caller-editable fields. Status is not
// client-settable; only check-in and the sweeps transition it.
func (s *VisitorService) UpdatePreApproval(id uint, pa *models.PreApproval) (*models.PreApproval, error) {
	existing, err := s.GetPreApprovalByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"visitor_name":     pa.VisitorName,
		"arrival_time":     pa.ArrivalTime,
		"purpose":          pa.Purpose,
		"apartment_number": pa.ApartmentNumber,
	}
	if pa.DepartureTime != nil {
		updates["departure_time"] = *pa.DepartureTime
	} else {
		updates["departure_time"] = nil
	}

	if err := s.DB.Model(existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPreApprovalByID(id)
}

// DeletePreApproval removes a pre-approval row
func (s *VisitorService) DeletePreApproval(id uint) error {
	result := s.DB.Delete(&models.PreApproval{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPreApprovalNotFound
	}
	return nil
}

// CreateArrival records a visitor check-in. The activity insert and the
// pending -> checked_in transition run in one transaction so the log never
// disagrees with the pre-approval status.
func (s *VisitorService) CreateArrival(preApprovalID uint, visitorName string, securityGuardID uint) (*models.VisitorActivity, error) {
	activity := &models.VisitorActivity{
		PreApprovalID:        preApprovalID,
		VisitorName:          visitorName,
		ArrivalTime:          time.Now(),
		SecurityGuardCheckin: securityGuardID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pa models.PreApproval
		if err := tx.First(&pa, preApprovalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPreApprovalNotFound
			}
			return err
		}
		if activity.VisitorName == "" {
			activity.VisitorName = pa.VisitorName
		}
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		return tx.Model(&pa).Update("status", models.PreApprovalStatusCheckedIn).Error
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// CreateDeparture records a visitor check-out exactly once
func (s *VisitorService) CreateDeparture(arrivalID uint, securityGuardID uint) (*models.VisitorActivity, error) {
	var activity models.VisitorActivity
	if err := s.DB.First(&activity, arrivalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArrivalNotFound
		}
		return nil, err
	}
	if activity.DepartureTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	now := time.Now()
	updates := map[string]interface{}{
		"departure_time":          now,
		"security_guard_checkout": securityGuardID,
	}
	if err := s.DB.Model(&activity).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetArrivals lists check-ins joined with their pre-approval, newest first,
// optionally restricted to an exact date (date-only comparison).
func (s *VisitorService) GetArrivals(date string, q models.PaginationQuery) ([]models.VisitorActivityRecord, int64, error) {
	return s.activityPage("arrival_time", date, q)
}

// GetDepartures lists check-outs joined with their pre-approval, newest first
func (s *VisitorService) GetDepartures(date string, q models.PaginationQuery) ([]models.VisitorActivityRecord, int64, error) {
	return s.activityPage("departure_time", date, q)
}

func (s *VisitorService) activityPage(timeColumn, date string, q models.PaginationQuery) ([]models.VisitorActivityRecord, int64, error) {
	q.Normalize()

	filtered := func() *gorm.DB {
		query := s.DB.Model(&models.VisitorActivity{}).
			Where("visitor_activities." + timeColumn + " IS NOT NULL")
		if date != "" {
			query = query.Where("DATE(visitor_activities."+timeColumn+") = ?", date)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.VisitorActivityRecord
	err := filtered().
		Select("visitor_activities.*, pre_approvals.visitor_name AS pre_approval_visitor_name, pre_approvals.apartment_number").
		Joins("LEFT JOIN pre_approvals ON visitor_activities.pre_approval_id = pre_approvals.id").
		Order("visitor_activities." + timeColumn + " DESC").
		Limit(q.Limit).Offset(q.Offset()).
		Scan(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// GetVisitorActivityForResident returns the full visit history for one
// resident's pre-approvals, newest first
func (s *VisitorService) GetVisitorActivityForResident(residentID uint) ([]models.VisitorActivityRecord, error) {
	var records []models.VisitorActivityRecord
	err := s.DB.Model(&models.VisitorActivity{}).
		Select("visitor_activities.*, pre_approvals.visitor_name AS pre_approval_visitor_name, pre_approvals.apartment_number").
		Joins("LEFT JOIN pre_approvals ON visitor_activities.pre_approval_id = pre_approvals.id").
		Where("pre_approvals.resident_id = ?", residentID).
		Order("visitor_activities.arrival_time DESC").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ExpireOverduePreApprovals flips pending pre-approvals whose arrival time has
// elapsed to expired. Checked-in and already-expired rows are never touched.
func (s *VisitorService) ExpireOverduePreApprovals(now time.Time) (int64, error) {
	result := s.DB.Model(&models.PreApproval{}).
		Where("arrival_time < ? AND status = ?", now, models.PreApprovalStatusPending).
		Update("status", models.PreApprovalStatusExpired)
	return result.RowsAffected, result.Error
}

// DeleteStalePreApprovals removes pre-approvals whose arrival time is older
// than the retention cutoff
func (s *VisitorService) DeleteStalePreApprovals(cutoff time.Time) (int64, error) {
	result := s.DB.Where("arrival_time < ?", cutoff).Delete(&models.PreApproval{})
	return result.RowsAffected, result.Error
}
