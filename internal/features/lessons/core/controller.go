package lessons_core

import (
	"io"
	"net/http"
	"strings"

	users_middleware "lessonbook/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LessonController struct {
	lessonService     *LessonService
	commentService    *CommentService
	attachmentService *AttachmentService
	eventDispatcher   EventDispatcher
}

func (c *LessonController) SetEventDispatcher(dispatcher EventDispatcher) {
	c.eventDispatcher = dispatcher
}

func (c *LessonController) RegisterRoutes(router *gin.RouterGroup) {
	lessonRoutes := router.Group("/lessons")

	lessonRoutes.POST("", c.CreateLesson)
	lessonRoutes.GET("/:id", c.GetLesson)
	lessonRoutes.PUT("/:id", c.UpdateLesson)
	lessonRoutes.DELETE("/:id", c.DeleteLesson)
	lessonRoutes.POST("/:id/star", c.ToggleStar)
	lessonRoutes.GET("/:id/comments", c.GetComments)
	lessonRoutes.POST("/:id/comments", c.AddComment)
	lessonRoutes.GET("/:id/attachments", c.GetAttachments)
	lessonRoutes.POST("/:id/attachments", c.UploadAttachment)
	lessonRoutes.GET("/attachments/:attachmentId/download", c.DownloadAttachment)
	lessonRoutes.DELETE("/attachments/:attachmentId", c.DeleteAttachment)
}

func (c *LessonController) dispatch(events []Event) {
	if c.eventDispatcher != nil {
		c.eventDispatcher.DispatchEvents(events)
	}
}

func respondWithServiceError(ctx *gin.Context, err error) {
	message := err.Error()

	switch {
	case strings.HasPrefix(message, "insufficient permissions"):
		ctx.JSON(http.StatusForbidden, gin.H{"error": message})
	case strings.HasSuffix(message, "not found"):
		ctx.JSON(http.StatusNotFound, gin.H{"error": message})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
	}
}

// CreateLesson
// @Summary Create a lesson
// @Description Record a new lesson learned in a project
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLessonRequestDTO true "Lesson data"
// @Success 200 {object} LessonResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request CreateLessonRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, events, err := c.lessonService.CreateLesson(&request, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	c.dispatch(events)

	ctx.JSON(http.StatusOK, response)
}

// GetLesson
// @Summary Get lesson details
// @Description Get a lesson with its tags, star state and counters
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} LessonResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	response, err := c.lessonService.GetLesson(lessonID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateLesson
// @Summary Update a lesson
// @Description Update a lesson (submitter or admin only)
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param request body UpdateLessonRequestDTO true "Lesson update data"
// @Success 200 {object} LessonResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	var request UpdateLessonRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, events, err := c.lessonService.UpdateLesson(lessonID, &request, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	c.dispatch(events)

	ctx.JSON(http.StatusOK, response)
}

// DeleteLesson
// @Summary Delete a lesson
// @Description Delete a lesson (submitter or admin only)
// @Tags lessons
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	if err := c.lessonService.DeleteLesson(lessonID, user); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}

// ToggleStar
// @Summary Toggle star on a lesson
// @Description Star the lesson, or remove the star if already set
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} ToggleStarResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/star [post]
func (c *LessonController) ToggleStar(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	response, err := c.lessonService.ToggleStar(lessonID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetComments
// @Summary List lesson comments
// @Description Get all comments on a lesson, newest first
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} ListCommentsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/comments [get]
func (c *LessonController) GetComments(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	response, err := c.commentService.GetComments(lessonID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AddComment
// @Summary Add a comment
// @Description Add a comment to a lesson; comments cannot be edited or removed
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param request body AddCommentRequestDTO true "Comment data"
// @Success 200 {object} CommentResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/comments [post]
func (c *LessonController) AddComment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	var request AddCommentRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, events, err := c.commentService.AddComment(lessonID, &request, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	c.dispatch(events)

	ctx.JSON(http.StatusOK, response)
}

// GetAttachments
// @Summary List lesson attachments
// @Description Get attachment metadata for a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} ListAttachmentsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/attachments [get]
func (c *LessonController) GetAttachments(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	response, err := c.attachmentService.GetAttachments(lessonID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UploadAttachment
// @Summary Upload an attachment
// @Description Attach a file to a lesson (multipart form, field "file")
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Param file formData file true "File to attach"
// @Param description formData string false "Attachment description"
// @Success 200 {object} AttachmentResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id}/attachments [post]
func (c *LessonController) UploadAttachment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	lessonID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson ID"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Attachment file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read attachment file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	description := ctx.PostForm("description")

	response, err := c.attachmentService.UploadAttachment(
		lessonID, fileHeader.Filename, description, contentType, data, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DownloadAttachment
// @Summary Download an attachment
// @Description Download the attachment file contents
// @Tags lessons
// @Security BearerAuth
// @Param attachmentId path string true "Attachment ID"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/attachments/{attachmentId}/download [get]
func (c *LessonController) DownloadAttachment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attachmentID, err := uuid.Parse(ctx.Param("attachmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	attachment, err := c.attachmentService.DownloadAttachment(attachmentID, user)
	if err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+attachment.FileName+`"`)
	ctx.Data(http.StatusOK, attachment.ContentType, attachment.Data)
}

// DeleteAttachment
// @Summary Delete an attachment
// @Description Delete an attachment (uploader or admin only)
// @Tags lessons
// @Security BearerAuth
// @Param attachmentId path string true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/attachments/{attachmentId} [delete]
func (c *LessonController) DeleteAttachment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	attachmentID, err := uuid.Parse(ctx.Param("attachmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attachment ID"})
		return
	}

	if err := c.attachmentService.DeleteAttachment(attachmentID, user); err != nil {
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Attachment deleted successfully"})
}
