package lessons_core

import (
	"time"

	"github.com/google/uuid"
)

type CreateLessonRequestDTO struct {
	ProjectID           uuid.UUID    `json:"projectId"       binding:"required"`
	CategoryID          *uuid.UUID   `json:"categoryId"`
	CategoryName        string       `json:"categoryName"` // Resolved case-insensitively, created when missing
	Title               string       `json:"title"           binding:"required,min=1,max=255"`
	Description         string       `json:"description"     binding:"required"`
	Recommendations     string       `json:"recommendations"`
	DateIdentified      string       `json:"dateIdentified"  binding:"required"` // YYYY-MM-DD
	Impact              LessonImpact `json:"impact"          binding:"required"`
	Status              LessonStatus `json:"status"`
	ImplementationNotes string       `json:"implementationNotes"`
	TaggedUserIDs       []uuid.UUID  `json:"taggedUserIds"`
}

type UpdateLessonRequestDTO struct {
	CategoryID          *uuid.UUID   `json:"categoryId"`
	CategoryName        string       `json:"categoryName"`
	Title               string       `json:"title"           binding:"required,min=1,max=255"`
	Description         string       `json:"description"     binding:"required"`
	Recommendations     string       `json:"recommendations"`
	DateIdentified      string       `json:"dateIdentified"  binding:"required"`
	Impact              LessonImpact `json:"impact"          binding:"required"`
	Status              LessonStatus `json:"status"          binding:"required"`
	ImplementationNotes string       `json:"implementationNotes"`
	TaggedUserIDs       []uuid.UUID  `json:"taggedUserIds"`
}

type LessonResponseDTO struct {
	LessonRow
	TaggedUsers []TaggedUserDTO `json:"taggedUsers"`
}

type TaggedUserDTO struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
}

type ListLessonsResponseDTO struct {
	Lessons []LessonRow `json:"lessons"`
	Total   int         `json:"total"`
}

type AddCommentRequestDTO struct {
	Body string `json:"body" binding:"required,min=1"`
}

type CommentResponseDTO struct {
	ID             uuid.UUID `json:"id"`
	LessonID       uuid.UUID `json:"lessonId"`
	AuthorID       uuid.UUID `json:"authorId"`
	AuthorUsername string    `json:"authorUsername" gorm:"column:author_username"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ListCommentsResponseDTO struct {
	Comments []*CommentResponseDTO `json:"comments"`
}

type ToggleStarResponseDTO struct {
	IsStarred bool  `json:"isStarred"`
	StarCount int64 `json:"starCount"`
}

type AttachmentResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	LessonID    uuid.UUID `json:"lessonId"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	FileName    string    `json:"fileName"`
	Description string    `json:"description"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListAttachmentsResponseDTO struct {
	Attachments []*AttachmentResponseDTO `json:"attachments"`
}
