package policy

import (
	"testing"

	"github.com/praveen-sripati/society-backend/internal/domain/models"
)

func TestCanPostNotice(t *testing.T) {
	tests := []struct {
		role models.Role
		want bool
	}{
		{models.RoleResident, false},
		{models.RoleCommittee, true},
		{models.RoleAdmin, true},
		{models.RoleSecurity, false},
	}
	for _, tt := range tests {
		if got := CanPostNotice(tt.role); got != tt.want {
			t.Errorf("CanPostNotice(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestCanManageNotice(t *testing.T) {
	notice := &models.Notice{PostedBy: 5}
	tests := []struct {
		name     string
		callerID uint
		role     models.Role
		want     bool
	}{
		{"poster", 5, models.RoleCommittee, true},
		{"other committee", 6, models.RoleCommittee, false},
		{"admin", 6, models.RoleAdmin, true},
		{"poster resident", 5, models.RoleResident, true},
	}
	for _, tt := range tests {
		if got := CanManageNotice(tt.callerID, tt.role, notice); got != tt.want {
			t.Errorf("%s: CanManageNotice = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanModifyPreApproval(t *testing.T) {
	pa := &models.PreApproval{ResidentID: 3}
	tests := []struct {
		name     string
		callerID uint
		role     models.Role
		want     bool
	}{
		{"owner", 3, models.RoleResident, true},
		{"other resident", 4, models.RoleResident, false},
		{"admin", 4, models.RoleAdmin, true},
		{"security", 4, models.RoleSecurity, false},
	}
	for _, tt := range tests {
		if got := CanModifyPreApproval(tt.callerID, tt.role, pa); got != tt.want {
			t.Errorf("%s: CanModifyPreApproval = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMaintenanceRoles(t *testing.T) {
	for _, tt := range []struct {
		role models.Role
		want bool
	}{
		{models.RoleResident, false},
		{models.RoleCommittee, true},
		{models.RoleAdmin, true},
		{models.RoleSecurity, false},
	} {
		if got := CanUpdateMaintenanceRequest(tt.role); got != tt.want {
			t.Errorf("CanUpdateMaintenanceRequest(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}

	// Feedback is the resident role exactly
	for _, tt := range []struct {
		role models.Role
		want bool
	}{
		{models.RoleResident, true},
		{models.RoleCommittee, false},
		{models.RoleAdmin, false},
		{models.RoleSecurity, false},
	} {
		if got := CanSubmitMaintenanceFeedback(tt.role); got != tt.want {
			t.Errorf("CanSubmitMaintenanceFeedback(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
