package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/app/middleware"
	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	RegisterResident()
	Login()
	Me()
	Logout()
}

// UserController handles registration, login and session endpoints
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterResidentRequest is the resident registration payload
type RegisterResidentRequest struct {
	ApartmentNumber string `json:"apartment_number" binding:"required" example:"12A"`
	MobileNumber    string `json:"mobile_number" binding:"required" example:"9998887777"`
	Password        string `json:"password" binding:"required" example:"pw12345"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required" example:"9998887777"`
	Password     string `json:"password" binding:"required" example:"pw12345"`
}

// HandleUserFunc returns a gin handler dispatching to the user controller
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "registerResident":
			controller.RegisterResident()
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		case "logout":
			controller.Logout()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// setSessionCookie issues the signed session cookie for the user
func (c *UserController) setSessionCookie(user *models.User) error {
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return err
	}
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(middleware.SessionCookieName, token, int(services.TokenTTL.Seconds()), "/", "", false, true)
	return nil
}

// RegisterResident registers a new resident account
// @Summary      Register a resident
// @Description  Creates a resident account and issues the session cookie
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body RegisterResidentRequest true "Registration payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Router       /api/users/register/resident [post]
func (c *UserController) RegisterResident() {
	var req RegisterResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Apartment number, mobile number and password are required.")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.RegisterResident(req.ApartmentNumber, req.MobileNumber, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist)
			return
		}
		config.Error("register resident: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	if err := c.setSessionCookie(user); err != nil {
		config.Error("issue session token: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Registration successful.", gin.H{
		"user": gin.H{"id": user.ID, "role": user.Role},
	})
}

// Login authenticates a user by mobile number and password
// @Summary      Login
// @Description  Verifies credentials and issues the session cookie
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login payload"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /api/users/login [post]
func (c *UserController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Mobile number and password are required.")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Login(req.MobileNumber, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		config.Error("login: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	if err := c.setSessionCookie(user); err != nil {
		config.Error("issue session token: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "Login successful.", gin.H{
		"user": gin.H{"id": user.ID, "role": user.Role},
	})
}

// Me returns the authenticated caller's profile summary
// @Summary      Current user
// @Description  Returns the authenticated user's id, apartment, mobile and role
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/users/me [get]
// @Security     CookieAuth
func (c *UserController) Me() {
	userID, _, ok := middleware.CurrentUser(c.Ctx)
	if !ok {
		response.Fail(c.Ctx, code.ErrTokenMissing)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	summary, err := userService.GetUserSummary(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound)
			return
		}
		config.Error("fetch current user: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"user": summary})
}

// Logout clears the session cookie
// @Summary      Logout
// @Description  Expires the session cookie
// @Tags         Users
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/users/logout [post]
// @Security     CookieAuth
func (c *UserController) Logout() {
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c.Ctx, "Logout successful.", nil)
}
