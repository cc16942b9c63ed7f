package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/app/middleware"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// InterfaceChatController defines the chat controller interface
type InterfaceChatController interface {
	CreateGroup()
	GetGroups()
	GetGroup()
	SendMessage()
	GetMessages()
	GetMessage()
}

// ChatController handles chat groups and messages
type ChatController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewChatController creates a new chat controller
func NewChatController(ctx *gin.Context, container *container.ServiceContainer) *ChatController {
	return &ChatController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateGroupRequest creates either an ordinary group or, when recipient_id
// is set, a direct-message group with the caller
type CreateGroupRequest struct {
	Name        string `json:"name" example:"Tower B residents"`
	Description string `json:"description" example:"Announcements for tower B"`
	RecipientID *uint  `json:"recipient_id" example:"7"`
}

// SendMessageRequest posts a message, optionally into a group
type SendMessageRequest struct {
	Content  string  `json:"content" binding:"required" example:"@message42 agreed, see you at 6"`
	GroupID  *uint   `json:"group_id" example:"3"`
	MediaURL *string `json:"media_url"`
}

// HandleChatFunc returns a gin handler dispatching to the chat controller
func HandleChatFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewChatController(ctx, container)

		switch method {
		case "createGroup":
			controller.CreateGroup()
		case "getGroups":
			controller.GetGroups()
		case "getGroup":
			controller.GetGroup()
		case "sendMessage":
			controller.SendMessage()
		case "getMessages":
			controller.GetMessages()
		case "getMessage":
			controller.GetMessage()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// CreateGroup creates a chat group; with recipient_id it creates the unique
// direct-message group for the caller/recipient pair
// @Summary      Create a group
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body CreateGroupRequest true "Group payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Router       /api/chat/groups [post]
// @Security     CookieAuth
func (c *ChatController) CreateGroup() {
	var req CreateGroupRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request body.")
		return
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	chatService := c.Container.GetService("chat").(services.InterfaceChatService)

	if req.RecipientID != nil {
		group, err := chatService.CreateDirectGroup(req.Description, userID, *req.RecipientID)
		if err != nil {
			if errors.Is(err, services.ErrChatExists) {
				response.Fail(c.Ctx, code.ErrChatAlreadyExists)
				return
			}
			config.Error("create direct group: %v", err)
			response.ServerError(c.Ctx)
			return
		}
		response.Created(c.Ctx, "Direct message chat created successfully.", gin.H{"group": group})
		return
	}

	if req.Name == "" {
		response.ParamError(c.Ctx, "Group name is required.")
		return
	}

	group, err := chatService.CreateGroup(req.Name, req.Description, userID)
	if err != nil {
		config.Error("create group: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Group created successfully.", gin.H{"group": group})
}

// GetGroups lists all chat groups
// @Summary      List groups
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/chat/groups [get]
// @Security     CookieAuth
func (c *ChatController) GetGroups() {
	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	groups, err := chatService.GetAllGroups()
	if err != nil {
		config.Error("list groups: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"groups": groups})
}

// GetGroup returns a single group
// @Summary      Get a group
// @Tags         Chat
// @Produce      json
// @Param        id path int true "Group ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/chat/groups/{id} [get]
// @Security     CookieAuth
func (c *ChatController) GetGroup() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid group id.")
		return
	}

	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	group, err := chatService.GetGroupByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			response.Fail(c.Ctx, code.ErrGroupNotFound)
			return
		}
		config.Error("get group %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"group": group})
}

// SendMessage posts a message; an @messageN token in the content becomes a
// weak reply reference
// @Summary      Send a message
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Message payload"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Router       /api/chat/messages [post]
// @Security     CookieAuth
func (c *ChatController) SendMessage() {
	var req SendMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Message content is required.")
		return
	}

	userID, _, _ := middleware.CurrentUser(c.Ctx)
	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	message, err := chatService.SendMessage(req.Content, userID, req.GroupID, req.MediaURL)
	if err != nil {
		config.Error("send message: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Message sent successfully.", gin.H{"message": message})
}

// GetMessages lists messages oldest-first, optionally for one group
// @Summary      List messages
// @Tags         Chat
// @Produce      json
// @Param        group_id query int false "Group filter"
// @Success      200  {object}  response.SuccessResponse
// @Router       /api/chat/messages [get]
// @Security     CookieAuth
func (c *ChatController) GetMessages() {
	var groupID *uint
	if raw := c.Ctx.Query("group_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.ParamError(c.Ctx, "Invalid group id.")
			return
		}
		id := uint(parsed)
		groupID = &id
	}

	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	messages, err := chatService.GetAllMessages(groupID)
	if err != nil {
		config.Error("list messages: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"messages": messages})
}

// GetMessage returns a single message
// @Summary      Get a message
// @Tags         Chat
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/chat/messages/{id} [get]
// @Security     CookieAuth
func (c *ChatController) GetMessage() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid message id.")
		return
	}

	chatService := c.Container.GetService("chat").(services.InterfaceChatService)
	message, err := chatService.GetMessageByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			response.Fail(c.Ctx, code.ErrMessageNotFound)
			return
		}
		config.Error("get message %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"message": message})
}
