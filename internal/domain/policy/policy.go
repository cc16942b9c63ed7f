// Package policy collects the per-operation authorization rules as pure
// predicates so the rule set stays auditable and testable in isolation,
// instead of being repeated inline across handlers.
package policy

import "github.com/praveen-sripati/society-backend/internal/domain/models"

// CanPostNotice allows committee and admin to create notices
func CanPostNotice(role models.Role) bool {
	return role == models.RoleCommittee || role == models.RoleAdmin
}

// CanManageNotice allows the original poster or an admin to update/delete a notice
func CanManageNotice(callerID uint, role models.Role, notice *models.Notice) bool {
	return role == models.RoleAdmin || notice.PostedBy == callerID
}

// CanModifyPreApproval allows the owning resident or an admin to edit/delete
// a pre-approval
func CanModifyPreApproval(callerID uint, role models.Role, pa *models.PreApproval) bool {
	return role == models.RoleAdmin || pa.ResidentID == callerID
}

// CanUpdateMaintenanceRequest allows committee and admin to change
// status/assignment
func CanUpdateMaintenanceRequest(role models.Role) bool {
	return role == models.RoleCommittee || role == models.RoleAdmin
}

// CanSubmitMaintenanceFeedback allows exactly the resident role
func CanSubmitMaintenanceFeedback(role models.Role) bool {
	return role == models.RoleResident
}
