package lessons_core

import (
	"time"

	"lessonbook/internal/storage"

	"github.com/google/uuid"
)

type CommentRepository struct{}

func (r *CommentRepository) CreateComment(comment *LessonComment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(comment).Error
}

func (r *CommentRepository) GetCommentsByLessonID(lessonID uuid.UUID) ([]*CommentResponseDTO, error) {
	comments := make([]*CommentResponseDTO, 0)

	err := storage.GetDb().
		Table("lesson_comments lc").
		Select("lc.id, lc.lesson_id, lc.author_id, u.username as author_username, lc.body, lc.created_at").
		Joins("JOIN users u ON lc.author_id = u.id").
		Where("lc.lesson_id = ?", lessonID).
		Order("lc.created_at DESC").
		Scan(&comments).Error

	return comments, err
}

func (r *CommentRepository) CountCommentsByLessonID(lessonID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&LessonComment{}).
		Where("lesson_id = ?", lessonID).
		Count(&count).Error

	return count, err
}
