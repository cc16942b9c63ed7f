package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/app/middleware"
	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/domain/policy"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// InterfaceVisitorController defines the visitor controller interface
type InterfaceVisitorController interface {
	CreatePreApproval()
	GetPreApprovals()
	GetPaginatedPreApprovals(status models.PreApprovalStatus)
	GetPreApproval()
	UpdatePreApproval()
	DeletePreApproval()
	CreateArrival()
	CreateDeparture()
	GetArrivals(paginatedShape bool)
	GetDepartures(paginatedShape bool)
	GetResidentActivity()
}

// VisitorController handles pre-approvals and the security-desk activity log
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController creates a new visitor controller
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// PreApprovalRequest is the create/update payload for a pre-approval
type PreApprovalRequest struct {
	VisitorName     string     `json:"visitor_name" binding:"required" example:"Ravi Kumar"`
	ArrivalTime     time.Time  `json:"arrival_time" binding:"required" example:"2025-07-01T15:00:00Z"`
	DepartureTime   *time.Time `json:"departure_time"`
	Purpose         string     `json:"purpose" example:"Courier delivery"`
	ApartmentNumber string     `json:"apartment_number" binding:"required" example:"12A"`
}

// ArrivalRequest records a visitor check-in against a pre-approval
type ArrivalRequest struct {
	PreApprovalID uint   `json:"pre_approval_id" binding:"required" example:"3"`
	VisitorName   string `json:"visitor_name" example:"Ravi Kumar"`
}

// HandleVisitorFunc returns a gin handler dispatching to the visitor controller
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)

		switch method {
		case "createPreApproval":
			controller.CreatePreApproval()
		case "getPreApprovals":
			controller.GetPreApprovals()
		case "getPaginatedPreApprovals":
			controller.GetPaginatedPreApprovals("")
		case "getUpcomingPreApprovals":
			controller.GetPaginatedPreApprovals(models.PreApprovalStatusPending)
		case "getExpiredPreApprovals":
			controller.GetPaginatedPreApprovals(models.PreApprovalStatusExpired)
		case "getPreApproval":
			controller.GetPreApproval()
		case "updatePreApproval":
			controller.UpdatePreApproval()
		case "deletePreApproval":
			controller.DeletePreApproval()
		case "createArrival":
			controller.CreateArrival()
		case "createDeparture":
			controller.CreateDeparture()
		case "getArrivals":
			controller.GetArrivals(false)
		case "getArrivalsPaginated":
			controller.GetArrivals(true)
		case "getDepartures":
			controller.GetDepartures(false)
		case "getDeparturesPaginated":
			controller.GetDepartures(true)
		case "getResidentActivity":
			controller.GetResidentActivity()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// pathID parses a numeric path parameter
func (c *VisitorController) pathID(name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Ctx.Param(name), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// CreatePreApproval registers an expected visitor for the calling resident
// @Summary      Create a pre-approval
// @Tags         Visitors
// @Accept       json
// @Produce      json
// @Param        request body PreApprovalRequest true "Pre-approval payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals [post]
// @Security     CookieAuth
func (c *VisitorController) CreatePreApproval() {
	var req PreApprovalRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Visitor name, arrival time and apartment number are required.")
		return
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	pa := &models.PreApproval{
		ResidentID:      userID,
		VisitorName:     req.VisitorName,
		ArrivalTime:     req.ArrivalTime,
		DepartureTime:   req.DepartureTime,
		Purpose:         req.Purpose,
		ApartmentNumber: req.ApartmentNumber,
		Status:          models.PreApprovalStatusPending,
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	if err := visitorService.CreatePreApproval(pa); err != nil {
		config.Error("create pre-approval: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Pre-approval created successfully.", gin.H{"preApproval": pa})
}

// GetPreApprovals lists every pre-approval
// @Summary      List pre-approvals
// @Tags         Visitors
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/visitor-pre-approvals [get]
// @Security     CookieAuth
func (c *VisitorController) GetPreApprovals() {
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	pas, err := visitorService.GetAllPreApprovals()
	if err != nil {
		config.Error("list pre-approvals: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"preApprovals": pas})
}

// GetPaginatedPreApprovals lists pre-approvals page by page, optionally
// restricted to a single status
// @Summary      List pre-approvals paginated
// @Tags         Visitors
// @Produce      json
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Rows per page, default 10"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/visitor-pre-approvals/paginated [get]
// @Security     CookieAuth
func (c *VisitorController) GetPaginatedPreApprovals(status models.PreApprovalStatus) {
	var q models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Ctx, "Invalid pagination parameters.")
		return
	}
	q.Normalize()

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	pas, total, err := visitorService.GetPaginatedPreApprovals(q, status)
	if err != nil {
		config.Error("list paginated pre-approvals: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", models.PaginatedResult{Data: pas, Total: total})
}

// GetPreApproval returns a single pre-approval
// @Summary      Get a pre-approval
// @Tags         Visitors
// @Produce      json
// @Param        id path int true "Pre-approval ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals/{id} [get]
// @Security     CookieAuth
func (c *VisitorController) GetPreApproval() {
	id, ok := c.pathID("id")
	if !ok {
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	pa, err := visitorService.GetPreApprovalByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPreApprovalNotFound) {
			response.Fail(c.Ctx, code.ErrPreApprovalNotFound)
			return
		}
		config.Error("get pre-approval %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"preApproval": pa})
}

// UpdatePreApproval edits a pre-approval's fields; status is never client-settable
// @Summary      Update a pre-approval
// @Tags         Visitors
// @Accept       json
// @Produce      json
// @Param        id path int true "Pre-approval ID"
// @Param        request body PreApprovalRequest true "Updated fields"
// @Success      200  {object}  response.SuccessResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals/{id} [put]
// @Security     CookieAuth
func (c *VisitorController) UpdatePreApproval() {
	id, ok := c.pathID("id")
	if !ok {
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	existing, err := visitorService.GetPreApprovalByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPreApprovalNotFound) {
			response.Fail(c.Ctx, code.ErrPreApprovalNotFound)
			return
		}
		config.Error("get pre-approval %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanModifyPreApproval(userID, role, existing) {
		response.Forbidden(c.Ctx, "Only the owning resident or an admin can modify this pre-approval.")
		return
	}

	var req PreApprovalRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Visitor name, arrival time and apartment number are required.")
		return
	}

	updated, err := visitorService.UpdatePreApproval(id, &models.PreApproval{
		VisitorName:     req.VisitorName,
		ArrivalTime:     req.ArrivalTime,
		DepartureTime:   req.DepartureTime,
		Purpose:         req.Purpose,
		ApartmentNumber: req.ApartmentNumber,
	})
	if err != nil {
		config.Error("update pre-approval %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Pre-approval updated successfully.", gin.H{"preApproval": updated})
}

// DeletePreApproval removes a pre-approval
// @Summary      Delete a pre-approval
// @Tags         Visitors
// @Produce      json
// @Param        id path int true "Pre-approval ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals/{id} [delete]
// @Security     CookieAuth
func (c *VisitorController) DeletePreApproval() {
	id, ok := c.pathID("id")
	if !ok {
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	existing, err := visitorService.GetPreApprovalByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPreApprovalNotFound) {
			response.Fail(c.Ctx, code.ErrPreApprovalNotFound)
			return
		}
		config.Error("get pre-approval %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanModifyPreApproval(userID, role, existing) {
		response.Forbidden(c.Ctx, "Only the owning resident or an admin can modify this pre-approval.")
		return
	}

	if err := visitorService.DeletePreApproval(id); err != nil {
		config.Error("delete pre-approval %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Pre-approval deleted successfully.", nil)
}

// CreateArrival records a visitor check-in at the security desk
// @Summary      Record a visitor arrival
// @Description  Inserts the activity row and flips the pre-approval to checked_in in one transaction
// @Tags         Visitors
// @Accept       json
// @Produce      json
// @Param        request body ArrivalRequest true "Arrival payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals/arrivals [post]
// @Security     CookieAuth
func (c *VisitorController) CreateArrival() {
	var req ArrivalRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Pre-approval id is required.")
		return
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	activity, err := visitorService.CreateArrival(req.PreApprovalID, req.VisitorName, userID)
	if err != nil {
		if errors.Is(err, services.ErrPreApprovalNotFound) {
			response.Fail(c.Ctx, code.ErrPreApprovalNotFound)
			return
		}
		config.Error("record arrival for pre-approval %d: %v", req.PreApprovalID, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Visitor checked in successfully.", gin.H{"activity": activity})
}

// CreateDeparture records a visitor check-out, exactly once per arrival
// @Summary      Record a visitor departure
// @Tags         Visitors
// @Produce      json
// @Param        arrivalId path int true "Arrival activity ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Router       /api/visitor-pre-approvals/departures/{arrivalId} [put]
// @Security     CookieAuth
func (c *VisitorController) CreateDeparture() {
	id, err := strconv.ParseUint(c.Ctx.Param("arrivalId"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid arrival id.")
		return
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	activity, err := visitorService.CreateDeparture(uint(id), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArrivalNotFound):
			response.Fail(c.Ctx, code.ErrArrivalNotFound)
		case errors.Is(err, services.ErrAlreadyCheckedOut):
			response.Fail(c.Ctx, code.ErrAlreadyCheckedOut)
		default:
			config.Error("record departure for arrival %d: %v", id, err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, "Visitor checked out successfully.", gin.H{"activity": activity})
}

// GetArrivals lists check-ins, optionally for a single calendar date
// @Summary      List visitor arrivals
// @Tags         Visitors
// @Produce      json
// @Param        date query string false "Date filter, YYYY-MM-DD"
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Rows per page, default 10"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/visitor-pre-approvals/arrivals [get]
// @Security     CookieAuth
func (c *VisitorController) GetArrivals(paginatedShape bool) {
	var q models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Ctx, "Invalid pagination parameters.")
		return
	}
	q.Normalize()

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	records, total, err := visitorService.GetArrivals(c.Ctx.Query("date"), q)
	if err != nil {
		config.Error("list arrivals: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	result := models.PaginatedResult{Data: records, Total: total}
	if paginatedShape {
		result.Page = q.Page
		result.Limit = q.Limit
	}
	response.Success(c.Ctx, "", result)
}

// GetDepartures lists check-outs, optionally for a single calendar date
// @Summary      List visitor departures
// @Tags         Visitors
// @Produce      json
// @Param        date query string false "Date filter, YYYY-MM-DD"
// @Param        page query int false "Page, default 1"
// @Param        limit query int false "Rows per page, default 10"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/visitor-pre-approvals/departures [get]
// @Security     CookieAuth
func (c *VisitorController) GetDepartures(paginatedShape bool) {
	var q models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&q); err != nil {
		response.ParamError(c.Ctx, "Invalid pagination parameters.")
		return
	}
	q.Normalize()

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	records, total, err := visitorService.GetDepartures(c.Ctx.Query("date"), q)
	if err != nil {
		config.Error("list departures: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	result := models.PaginatedResult{Data: records, Total: total}
	if paginatedShape {
		result.Page = q.Page
		result.Limit = q.Limit
	}
	response.Success(c.Ctx, "", result)
}

// GetResidentActivity lists the visit history for one resident
// @Summary      Resident visitor activity
// @Tags         Visitors
// @Produce      json
// @Param        residentId path int true "Resident ID"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/visitor-pre-approvals/activity/{residentId} [get]
// @Security     CookieAuth
func (c *VisitorController) GetResidentActivity() {
	id, err := strconv.ParseUint(c.Ctx.Param("residentId"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid resident id.")
		return
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	records, err := visitorService.GetVisitorActivityForResident(uint(id))
	if err != nil {
		config.Error("list resident %d activity: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"activity": records})
}
