package lessons_core

import (
	"time"

	"lessonbook/internal/storage"

	"github.com/google/uuid"
)

type AttachmentRepository struct{}

func (r *AttachmentRepository) CreateAttachment(attachment *LessonAttachment) error {
	if attachment.ID == uuid.Nil {
		attachment.ID = uuid.New()
	}
	if attachment.CreatedAt.IsZero() {
		attachment.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(attachment).Error
}

func (r *AttachmentRepository) GetAttachmentByID(attachmentID uuid.UUID) (*LessonAttachment, error) {
	var attachment LessonAttachment

	if err := storage.GetDb().Where("id = ?", attachmentID).First(&attachment).Error; err != nil {
		return nil, err
	}

	return &attachment, nil
}

// GetAttachmentsByLessonID returns attachment metadata without the
// file contents.
func (r *AttachmentRepository) GetAttachmentsByLessonID(lessonID uuid.UUID) ([]*AttachmentResponseDTO, error) {
	attachments := make([]*AttachmentResponseDTO, 0)

	err := storage.GetDb().
		Table("lesson_attachments").
		Select("id, lesson_id, uploaded_by, file_name, description, content_type, size_bytes, created_at").
		Where("lesson_id = ?", lessonID).
		Order("created_at ASC").
		Scan(&attachments).Error

	return attachments, err
}

func (r *AttachmentRepository) DeleteAttachment(attachmentID uuid.UUID) error {
	return storage.GetDb().Delete(&LessonAttachment{}, attachmentID).Error
}
