package lessons_core

import (
	"errors"
	"time"

	"lessonbook/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonRepository struct{}

func (r *LessonRepository) CreateLesson(lesson *Lesson) error {
	if lesson.ID == uuid.Nil {
		lesson.ID = uuid.New()
	}

	now := time.Now().UTC()
	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = now
	}
	if lesson.ModifiedAt.IsZero() {
		lesson.ModifiedAt = now
	}

	return storage.GetDb().Create(lesson).Error
}

func (r *LessonRepository) GetLessonByID(lessonID uuid.UUID) (*Lesson, error) {
	var lesson Lesson

	if err := storage.GetDb().Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		return nil, err
	}

	return &lesson, nil
}

func (r *LessonRepository) UpdateLesson(lesson *Lesson) error {
	lesson.ModifiedAt = time.Now().UTC()

	return storage.GetDb().Save(lesson).Error
}

func (r *LessonRepository) DeleteLesson(lessonID uuid.UUID) error {
	return storage.GetDb().Delete(&Lesson{}, lessonID).Error
}

const lessonRowSelect = `
	SELECT
		l.id,
		l.project_id,
		p.name as project_name,
		l.category_id,
		c.name as category_name,
		l.title,
		l.description,
		l.recommendations,
		l.date_identified,
		l.impact,
		l.status,
		l.implementation_notes,
		l.submitted_by,
		u.username as submitted_by_username,
		l.created_at,
		l.modified_at,
		EXISTS(
			SELECT 1 FROM lesson_stars ls
			WHERE ls.lesson_id = l.id AND ls.user_id = ?
		) as is_starred,
		(SELECT COUNT(*) FROM lesson_stars ls WHERE ls.lesson_id = l.id) as star_count,
		(SELECT COUNT(*) FROM lesson_comments lc WHERE lc.lesson_id = l.id) as comment_count
	FROM lessons l
	JOIN projects p ON l.project_id = p.id
	JOIN users u ON l.submitted_by = u.id
	LEFT JOIN categories c ON l.category_id = c.id`

// GetLessonRowsByProjectIDs returns enriched rows for every lesson in
// the given projects, newest first. Star state is resolved for viewerID.
func (r *LessonRepository) GetLessonRowsByProjectIDs(
	projectIDs []uuid.UUID,
	viewerID uuid.UUID,
) ([]LessonRow, error) {
	rows := make([]LessonRow, 0)

	if len(projectIDs) == 0 {
		return rows, nil
	}

	sql := lessonRowSelect + `
	WHERE l.project_id IN ?
	ORDER BY l.created_at DESC`

	err := storage.GetDb().Raw(sql, viewerID, projectIDs).Scan(&rows).Error

	return rows, err
}

func (r *LessonRepository) GetLessonRowByID(
	lessonID uuid.UUID,
	viewerID uuid.UUID,
) (*LessonRow, error) {
	var row LessonRow

	sql := lessonRowSelect + `
	WHERE l.id = ?`

	tx := storage.GetDb().Raw(sql, viewerID, lessonID).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}

// Tags

func (r *LessonRepository) ReplaceLessonTags(lessonID uuid.UUID, userIDs []uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&LessonTag{}).Error; err != nil {
			return err
		}

		for _, userID := range userIDs {
			tag := &LessonTag{
				ID:        uuid.New(),
				LessonID:  lessonID,
				UserID:    userID,
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.Create(tag).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *LessonRepository) GetLessonTaggedUsers(lessonID uuid.UUID) ([]TaggedUserDTO, error) {
	tagged := make([]TaggedUserDTO, 0)

	err := storage.GetDb().
		Table("lesson_tags lt").
		Select("lt.user_id, u.username").
		Joins("JOIN users u ON lt.user_id = u.id").
		Where("lt.lesson_id = ?", lessonID).
		Order("u.username ASC").
		Scan(&tagged).Error

	return tagged, err
}

func (r *LessonRepository) GetLessonTaggedUserIDs(lessonID uuid.UUID) ([]uuid.UUID, error) {
	userIDs := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&LessonTag{}).
		Where("lesson_id = ?", lessonID).
		Pluck("user_id", &userIDs).Error

	return userIDs, err
}

// Stars

func (r *LessonRepository) GetStar(lessonID, userID uuid.UUID) (*LessonStar, error) {
	var star LessonStar

	err := storage.GetDb().
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		First(&star).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &star, nil
}

func (r *LessonRepository) CreateStar(star *LessonStar) error {
	if star.ID == uuid.Nil {
		star.ID = uuid.New()
	}
	if star.CreatedAt.IsZero() {
		star.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(star).Error
}

func (r *LessonRepository) DeleteStar(lessonID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		Delete(&LessonStar{}).Error
}

func (r *LessonRepository) CountStars(lessonID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&LessonStar{}).
		Where("lesson_id = ?", lessonID).
		Count(&count).Error

	return count, err
}
