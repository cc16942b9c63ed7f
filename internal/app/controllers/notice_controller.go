package controllers

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/praveen-sripati/society-backend/internal/app/middleware"
	"github.com/praveen-sripati/society-backend/internal/domain/models"
	"github.com/praveen-sripati/society-backend/internal/domain/policy"
	"github.com/praveen-sripati/society-backend/internal/domain/services"
	"github.com/praveen-sripati/society-backend/internal/domain/services/container"
	"github.com/praveen-sripati/society-backend/internal/error/code"
	"github.com/praveen-sripati/society-backend/internal/error/response"
	"github.com/praveen-sripati/society-backend/internal/infrastructure/config"
)

// InterfaceNoticeController defines the notice controller interface
type InterfaceNoticeController interface {
	CreateNotice()
	GetNotices()
	GetNotice()
	UpdateNotice()
	DeleteNotice()
}

// NoticeController handles the notice lifecycle including attachments
type NoticeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewNoticeController creates a new notice controller
func NewNoticeController(ctx *gin.Context, container *container.ServiceContainer) *NoticeController {
	return &NoticeController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleNoticeFunc returns a gin handler dispatching to the notice controller
func HandleNoticeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewNoticeController(ctx, container)

		switch method {
		case "createNotice":
			controller.CreateNotice()
		case "getNotices":
			controller.GetNotices()
		case "getNotice":
			controller.GetNotice()
		case "updateNotice":
			controller.UpdateNotice()
		case "deleteNotice":
			controller.DeleteNotice()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// requestScheme derives the public URL scheme for stored file links
func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}

// checkUpload enforces the per-file size cap and mime prefix
func (c *NoticeController) checkUpload(fh *multipart.FileHeader, mimePrefix string) int {
	cfg := c.Container.GetService("config").(*config.Config)
	if fh.Size > cfg.MaxUploadSizeMB*1024*1024 {
		return code.ErrUploadTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), mimePrefix) {
		return code.ErrUploadBadType
	}
	return code.ErrSuccess
}

// noticeFields validates the shared multipart text fields
func (c *NoticeController) noticeFields() (title, content string, category models.NoticeCategory, ok bool) {
	title = strings.TrimSpace(c.Ctx.PostForm("title"))
	content = strings.TrimSpace(c.Ctx.PostForm("content"))
	category = models.NoticeCategory(c.Ctx.PostForm("category"))
	if title == "" || content == "" {
		response.ParamError(c.Ctx, "Title and content are required.")
		return "", "", "", false
	}
	if !models.ValidNoticeCategory(category) {
		response.Fail(c.Ctx, code.ErrInvalidNoticeCategory)
		return "", "", "", false
	}
	return title, content, category, true
}

// saveImage stores an uploaded image and returns its public URL
func (c *NoticeController) saveImage(fh *multipart.FileHeader) (string, error) {
	storage := c.Container.GetService("storage").(services.InterfaceStorageService)
	filename, err := storage.SaveNoticeImage(fh)
	if err != nil {
		return "", err
	}
	return storage.NoticeImageURL(requestScheme(c.Ctx), c.Ctx.Request.Host, filename), nil
}

// savePDF stores an uploaded PDF and returns its public URL
func (c *NoticeController) savePDF(fh *multipart.FileHeader) (string, error) {
	storage := c.Container.GetService("storage").(services.InterfaceStorageService)
	filename, err := storage.SaveNoticePDF(fh)
	if err != nil {
		return "", err
	}
	return storage.NoticePDFURL(requestScheme(c.Ctx), c.Ctx.Request.Host, filename), nil
}

// CreateNotice creates a notice with optional image and PDF attachments
// @Summary      Create a notice
// @Description  Creates a community notice; accepts at most one image and one PDF
// @Tags         Notices
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Notice title"
// @Param        content formData string true "Notice body"
// @Param        category formData string true "One of maintenance, events, security, general"
// @Param        image formData file false "Image attachment (image/*)"
// @Param        pdfAttachment formData file false "PDF attachment (application/pdf)"
// @Success      201  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /api/notices [post]
// @Security     CookieAuth
func (c *NoticeController) CreateNotice() {
	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanPostNotice(role) {
		response.Forbidden(c.Ctx, "Only committee members and admins can post notices.")
		return
	}

	title, content, category, ok := c.noticeFields()
	if !ok {
		return
	}

	notice := &models.Notice{
		Title:    title,
		Content:  content,
		Category: category,
		PostedBy: userID,
	}

	if fh, err := c.Ctx.FormFile("image"); err == nil {
		if errCode := c.checkUpload(fh, "image/"); errCode != code.ErrSuccess {
			response.Fail(c.Ctx, errCode)
			return
		}
		imageURL, err := c.saveImage(fh)
		if err != nil {
			config.Error("store notice image: %v", err)
			response.ServerError(c.Ctx)
			return
		}
		notice.ImageURL = &imageURL
	}

	if fh, err := c.Ctx.FormFile("pdfAttachment"); err == nil {
		if errCode := c.checkUpload(fh, "application/pdf"); errCode != code.ErrSuccess {
			response.Fail(c.Ctx, errCode)
			return
		}
		pdfURL, err := c.savePDF(fh)
		if err != nil {
			config.Error("store notice pdf: %v", err)
			response.ServerError(c.Ctx)
			return
		}
		notice.Attachments = models.NewPDFAttachment(pdfURL, fh.Filename)
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	if err := noticeService.CreateNotice(notice); err != nil {
		config.Error("create notice: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, "Notice created successfully.", gin.H{"notice": notice})
}

// GetNotices lists notices with optional category filter and search
// @Summary      List notices
// @Description  Lists notices newest-first with optional category and substring search
// @Tags         Notices
// @Produce      json
// @Param        category query string false "Category filter, or all"
// @Param        search query string false "Case-insensitive substring over title/content"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Router       /api/notices [get]
// @Security     CookieAuth
func (c *NoticeController) GetNotices() {
	category := models.NoticeCategory(c.Ctx.Query("category"))
	if category != "" && category != "all" && !models.ValidNoticeCategory(category) {
		response.Fail(c.Ctx, code.ErrInvalidNoticeCategory)
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notices, err := noticeService.GetAllNotices(category, c.Ctx.Query("search"))
	if err != nil {
		config.Error("list notices: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"notices": notices})
}

// GetNotice returns a single notice
// @Summary      Get a notice
// @Tags         Notices
// @Produce      json
// @Param        id path int true "Notice ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/notices/{id} [get]
// @Security     CookieAuth
func (c *NoticeController) GetNotice() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid notice id.")
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	notice, err := noticeService.GetNoticeByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNoticeNotFound) {
			response.Fail(c.Ctx, code.ErrNoticeNotFound)
			return
		}
		config.Error("get notice %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, "", gin.H{"notice": notice})
}

// UpdateNotice updates a notice and reconciles its attachments
// @Summary      Update a notice
// @Description  Replaces fields and attachments; a new file replaces the old one, echoing current_image_url/current_pdf_url keeps it, and omitting both clears it
// @Tags         Notices
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Notice ID"
// @Param        title formData string true "Notice title"
// @Param        content formData string true "Notice body"
// @Param        category formData string true "One of maintenance, events, security, general"
// @Param        image formData file false "Replacement image"
// @Param        pdfAttachment formData file false "Replacement PDF"
// @Param        current_image_url formData string false "Echo to keep the existing image"
// @Param        current_pdf_url formData string false "Echo to keep the existing PDF"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/notices/{id} [put]
// @Security     CookieAuth
func (c *NoticeController) UpdateNotice() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid notice id.")
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	existing, err := noticeService.GetNoticeByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNoticeNotFound) {
			response.Fail(c.Ctx, code.ErrNoticeNotFound)
			return
		}
		config.Error("get notice %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanManageNotice(userID, role, existing) {
		response.Forbidden(c.Ctx, "Only the original poster or an admin can modify this notice.")
		return
	}

	title, content, category, ok := c.noticeFields()
	if !ok {
		return
	}

	oldImageURL := ""
	if existing.ImageURL != nil {
		oldImageURL = *existing.ImageURL
	}
	oldPDFURL := existing.AttachmentURL()

	// Resolve the image: new file replaces, keep-signal preserves, neither clears
	var imageURL *string
	if fh, err := c.Ctx.FormFile("image"); err == nil {
		if errCode := c.checkUpload(fh, "image/"); errCode != code.ErrSuccess {
			response.Fail(c.Ctx, errCode)
			return
		}
		newURL, err := c.saveImage(fh)
		if err != nil {
			config.Error("store notice image: %v", err)
			response.ServerError(c.Ctx)
			return
		}
		imageURL = &newURL
	} else if keep := c.Ctx.PostForm("current_image_url"); keep != "" {
		imageURL = existing.ImageURL
	}

	var attachments *datatypes.JSONType[models.PDFAttachment]
	if fh, err := c.Ctx.FormFile("pdfAttachment"); err == nil {
		if errCode := c.checkUpload(fh, "application/pdf"); errCode != code.ErrSuccess {
			response.Fail(c.Ctx, errCode)
			return
		}
		newURL, err := c.savePDF(fh)
		if err != nil {
			config.Error("store notice pdf: %v", err)
			response.ServerError(c.Ctx)
			return
		}
		attachments = models.NewPDFAttachment(newURL, fh.Filename)
	} else if keep := c.Ctx.PostForm("current_pdf_url"); keep != "" {
		attachments = existing.Attachments
	}

	updated, err := noticeService.UpdateNotice(uint(id), title, content, category, imageURL, attachments)
	if err != nil {
		config.Error("update notice %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	// The row is authoritative; stale files are removed after it commits
	storage := c.Container.GetService("storage").(services.InterfaceStorageService)
	newImageURL := ""
	if updated.ImageURL != nil {
		newImageURL = *updated.ImageURL
	}
	if oldImageURL != "" && oldImageURL != newImageURL {
		storage.DeleteFileByURL(oldImageURL)
	}
	if oldPDFURL != "" && oldPDFURL != updated.AttachmentURL() {
		storage.DeleteFileByURL(oldPDFURL)
	}

	response.Success(c.Ctx, "Notice updated successfully.", gin.H{"notice": updated})
}

// DeleteNotice deletes a notice and its attachment files
// @Summary      Delete a notice
// @Tags         Notices
// @Produce      json
// @Param        id path int true "Notice ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /api/notices/{id} [delete]
// @Security     CookieAuth
func (c *NoticeController) DeleteNotice() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "Invalid notice id.")
		return
	}

	noticeService := c.Container.GetService("notice").(services.InterfaceNoticeService)
	existing, err := noticeService.GetNoticeByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNoticeNotFound) {
			response.Fail(c.Ctx, code.ErrNoticeNotFound)
			return
		}
		config.Error("get notice %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	userID, role, _ := middleware.CurrentUser(c.Ctx)
	if !policy.CanManageNotice(userID, role, existing) {
		response.Forbidden(c.Ctx, "Only the original poster or an admin can modify this notice.")
		return
	}

	if err := noticeService.DeleteNotice(uint(id)); err != nil {
		if errors.Is(err, services.ErrNoticeNotFound) {
			response.Fail(c.Ctx, code.ErrNoticeNotFound)
			return
		}
		config.Error("delete notice %d: %v", id, err)
		response.ServerError(c.Ctx)
		return
	}

	storage := c.Container.GetService("storage").(services.InterfaceStorageService)
	if existing.ImageURL != nil {
		storage.DeleteFileByURL(*existing.ImageURL)
	}
	if pdfURL := existing.AttachmentURL(); pdfURL != "" {
		storage.DeleteFileByURL(pdfURL)
	}

	response.Success(c.Ctx, "Notice deleted successfully.", nil)
}
