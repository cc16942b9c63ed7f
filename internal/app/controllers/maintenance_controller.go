package controllers

import (
	"errors"
	"strconv"

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

// InterfaceMaintenanceController defines the maintenance controller interface
type InterfaceMaintenanceController interface {
	CreateRequest()
	GetRequests()
	GetRequest()
	UpdateRequest()
	SubmitFeedback()
}

// MaintenanceController handles resident repair requests and their workflow
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMaintenanceController creates a new maintenance controller
func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMaintenanceRequest is the request creation payload
type CreateMaintenanceRequest struct {
	ApartmentNumber string `json:"apartment_number" binding:"required" example:"12A"`
	Category        string `json:"category" binding:"required" example:"plumbing"`
	Description     string `json:"description" binding:"required" example:"Kitchen sink is leaking"`
	LocationDetails string `json:"location_details" example:"Under the sink"`
	Priority        string `json:"priority" example:"medium"`
}

// UpdateMaintenanceRequest carries a staff status/assignment change
type UpdateMaintenanceRequest struct {
	Status     *string `json:"status" example:"in_progress"`
	AssignedTo *string `json:"assigned_to" example:"Suresh (plumber)"`
}

// FeedbackRequest is resident feedback on a request
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required" example:"4"`
	Comment string `json:"comment" example:"Fixed quickly"`
}

// HandleMaintenanceFunc returns a gin handler dispatching to the maintenance controller
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "createRequest":
			controller.CreateRequest()
		case "getRequests":
			controller.GetRequests()
		case "getRequest":
			controller.GetRequest()
		case "updateRequest":
			controller.UpdateRequest()
		case "submitFeedback":
			controller.SubmitFeedback()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// CreateRequest files a new maintenance request for the calling resident
// @Summary      Create a maintenance request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        request body CreateMaintenanceRequest true "Request payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Router       /api/maintenance-requests [post]
// @Security     CookieAuth
func (c *MaintenanceController) CreateRequest() {
	var req CreateMaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Apartment number, category and description are required.")
		return
	}

	category := models.MaintenanceCategory(req.Category)
	if !models.ValidMaintenanceCategory(category) {
		response.Fail(c.Ctx, code.ErrInvalidRequestCategory)
		return
	}
	priority := models.MaintenancePriority(req.Priority)
	if req.Priority != "" && !models.ValidMaintenancePriority(priority) {
		response.Fail(c.Ctx, code.ErrInvalidPriority)
		return
	}
	if req.Priority == "" {
		priority = models.MaintenancePriorityMedium
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	request := &models.MaintenanceRequest{
		ResidentID:      userID,
		ApartmentNumber: req.ApartmentNumber,
		Category:        category,
		Description:     req.Description,
		LocationDetails: req.LocationDetails,
		Priority:        priority,
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.CreateRequest(request); err != nil {
		config.Error("create maintenance request: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Maintenance request created successfully.", gin.H{"request": request})
}

// GetRequests lists maintenance requests with optional filters and pagination
// @Summary      List maintenance requests
// @Tags         Maintenance
// @Produce      json
// @Param        category query string false "Category filter"
// @Param        status query string false "Status filter"
// @Param        priority query string false "Priority filter"
// @Param        page query int false "Page; omit with limit for the full result"
// @Param        limit query int false "Rows per page"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/maintenance-requests [get]
// @Security     CookieAuth
func (c *MaintenanceController) GetRequests() {
	filter := services.MaintenanceFilter{
		Category: models.MaintenanceCategory(c.Ctx.Query("category")),
		Status:   c.Ctx.Query("status"),
		Priority: models.MaintenancePriority(c.Ctx.Query("priority")),
	}
	page, _ := strconv.Atoi(c.Ctx.Query("page"))
	limit, _ := strconv.Atoi(c.Ctx.Query("limit"))

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	requests, err := maintenanceService.GetAllRequests(filter, page, limit)
	if err != nil {
		config.Error("list maintenance requests: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"requests": requests})
}

// GetRequest returns a single maintenance request with its audit trail
// @Summary      Get a maintenance request
// @Tags         Maintenance
// @Produce      json
// @Param        id path int true "Request ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/maintenance-requests/{id} [get]
// @Security     CookieAuth
func (c *MaintenanceController) GetRequest() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request id.")
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	request, err := maintenanceService.GetRequestByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			response.Fail(c.Ctx, code.ErrRequestNotFound)
			return
		}
		config.Error("get maintenance request %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"request": request})
}

// UpdateRequest applies a staff status/assignment change and appends an audit row
// @Summary      Update a maintenance request
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Param        request body UpdateMaintenanceRequest true "Status and/or assignment"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/maintenance-requests/{id} [put]
// @Security     CookieAuth
func (c *MaintenanceController) UpdateRequest() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request id.")
		return
	}

	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanUpdateMaintenanceRequest(role) {
		response.Forbidden(c.Ctx, "Only committee members and admins can update maintenance requests.")
		return
	}

	var req UpdateMaintenanceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request body.")
		return
	}
	if req.Status == nil && req.AssignedTo == nil {
		response.ParamError(c.Ctx, "At least one of status or assigned_to is required.")
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	request, err := maintenanceService.UpdateRequest(uint(id), req.Status, req.AssignedTo, userID)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			response.Fail(c.Ctx, code.ErrRequestNotFound)
			return
		}
		config.Error("update maintenance request %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Maintenance request updated successfully.", gin.H{"request": request})
}

// SubmitFeedback records resident feedback for a request
// @Summary      Submit feedback
// @Tags         Maintenance
// @Accept       json
// @Produce      json
// @Param        id path int true "Request ID"
// @Param        request body FeedbackRequest true "Rating 1-5 and optional comment"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/maintenance-requests/{id}/feedback [post]
// @Security     CookieAuth
func (c *MaintenanceController) SubmitFeedback() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid request id.")
		return
	}

	_, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanSubmitMaintenanceFeedback(role) {
		response.Forbidden(c.Ctx, "Only residents can submit feedback.")
		return
	}

	var req FeedbackRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Rating is required.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		response.Fail(c.Ctx, code.ErrInvalidRating)
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	feedback, err := maintenanceService.SubmitFeedback(uint(id), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			response.Fail(c.Ctx, code.ErrRequestNotFound)
			return
		}
		config.Error("submit feedback for request %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Feedback submitted successfully.", gin.H{"feedback": feedback})
}
