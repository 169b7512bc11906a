package lessons_core

import (
	"time"

	"github.com/google/uuid"
)

type Lesson struct {
	ID                  uuid.UUID    `json:"id"                  gorm:"column:id"`
	ProjectID           uuid.UUID    `json:"projectId"           gorm:"column:project_id"`
	CategoryID          *uuid.UUID   `json:"categoryId"          gorm:"column:category_id"`
	Title               string       `json:"title"               gorm:"column:title"`
	Description         string       `json:"description"         gorm:"column:description"`
	Recommendations     string       `json:"recommendations"     gorm:"column:recommendations"`
	DateIdentified      time.Time    `json:"dateIdentified"      gorm:"column:date_identified"`
	Impact              LessonImpact `json:"impact"              gorm:"column:impact"`
	Status              LessonStatus `json:"status"              gorm:"column:status"`
	ImplementationNotes string       `json:"implementationNotes" gorm:"column:implementation_notes"`
	SubmittedBy         uuid.UUID    `json:"submittedBy"         gorm:"column:submitted_by"`
	CreatedAt           time.Time    `json:"createdAt"           gorm:"column:created_at"`
	ModifiedAt          time.Time    `json:"modifiedAt"          gorm:"column:modified_at"`
}

func (Lesson) TableName() string {
	return "lessons"
}

type LessonComment struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	LessonID  uuid.UUID `json:"lessonId"  gorm:"column:lesson_id"`
	AuthorID  uuid.UUID `json:"authorId"  gorm:"column:author_id"`
	Body      string    `json:"body"      gorm:"column:body"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (LessonComment) TableName() string {
	return "lesson_comments"
}

type LessonAttachment struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	LessonID    uuid.UUID `json:"lessonId"    gorm:"column:lesson_id"`
	UploadedBy  uuid.UUID `json:"uploadedBy"  gorm:"column:uploaded_by"`
	FileName    string    `json:"fileName"    gorm:"column:file_name"`
	Description string    `json:"description" gorm:"column:description"`
	ContentType string    `json:"contentType" gorm:"column:content_type"`
	SizeBytes   int64     `json:"sizeBytes"   gorm:"column:size_bytes"`
	Data        []byte    `json:"-"           gorm:"column:data"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (LessonAttachment) TableName() string {
	return "lesson_attachments"
}

// LessonTag marks a user as tagged on a lesson for follow-up.
type LessonTag struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	LessonID  uuid.UUID `json:"lessonId"  gorm:"column:lesson_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (LessonTag) TableName() string {
	return "lesson_tags"
}

type LessonStar struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	LessonID  uuid.UUID `json:"lessonId"  gorm:"column:lesson_id"`
	UserID    uuid.UUID `json:"userId"    gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (LessonStar) TableName() string {
	return "lesson_stars"
}

// LessonRow is a lesson enriched with display fields resolved through
// joins. The filter engine and exports operate on these rows.
type LessonRow struct {
	ID                  uuid.UUID    `json:"id"                  gorm:"column:id"`
	ProjectID           uuid.UUID    `json:"projectId"           gorm:"column:project_id"`
	ProjectName         string       `json:"projectName"         gorm:"column:project_name"`
	CategoryID          *uuid.UUID   `json:"categoryId"          gorm:"column:category_id"`
	CategoryName        *string      `json:"categoryName"        gorm:"column:category_name"`
	Title               string       `json:"title"               gorm:"column:title"`
	Description         string       `json:"description"         gorm:"column:description"`
	Recommendations     string       `json:"recommendations"     gorm:"column:recommendations"`
	DateIdentified      time.Time    `json:"dateIdentified"      gorm:"column:date_identified"`
	Impact              LessonImpact `json:"impact"              gorm:"column:impact"`
	Status              LessonStatus `json:"status"              gorm:"column:status"`
	ImplementationNotes string       `json:"implementationNotes" gorm:"column:implementation_notes"`
	SubmittedBy         uuid.UUID    `json:"submittedBy"         gorm:"column:submitted_by"`
	SubmittedByUsername string       `json:"submittedByUsername" gorm:"column:submitted_by_username"`
	CreatedAt           time.Time    `json:"createdAt"           gorm:"column:created_at"`
	ModifiedAt          time.Time    `json:"modifiedAt"          gorm:"column:modified_at"`
	IsStarred           bool         `json:"isStarred"           gorm:"column:is_starred"`
	StarCount           int64        `json:"starCount"           gorm:"column:star_count"`
	CommentCount        int64        `json:"commentCount"        gorm:"column:comment_count"`
}
