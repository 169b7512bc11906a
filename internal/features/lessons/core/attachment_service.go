package lessons_core

import (
	"errors"
	"fmt"
	"time"

	audit_logs "lessonbook/internal/features/audit_logs"
	projects_services "lessonbook/internal/features/projects/services"
	users_models "lessonbook/internal/features/users/models"

	"github.com/google/uuid"
)

// Attachment uploads are capped to keep rows manageable in Postgres.
const maxAttachmentSizeBytes = 20 * 1024 * 1024

type AttachmentService struct {
	attachmentRepository *AttachmentRepository
	lessonRepository     *LessonRepository
	projectService       *projects_services.ProjectService
	auditLogService      *audit_logs.AuditLogService
}

func (s *AttachmentService) UploadAttachment(
	lessonID uuid.UUID,
	fileName string,
	description string,
	contentType string,
	data []byte,
	user *users_models.User,
) (*AttachmentResponseDTO, error) {
	lesson, err := s.lessonRepository.GetLessonByID(lessonID)
	if err != nil {
		return nil, errors.New("lesson not found")
	}

	canAccess, _, err := s.projectService.CanUserAccessProject(lesson.ProjectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, errors.New("insufficient permissions to view this lesson")
	}

	if len(data) == 0 {
		return nil, errors.New("attachment file is empty")
	}
	if len(data) > maxAttachmentSizeBytes {
		return nil, errors.New("attachment exceeds maximum allowed size")
	}

	attachment := &LessonAttachment{
		ID:          uuid.New(),
		LessonID:    lessonID,
		UploadedBy:  user.ID,
		FileName:    fileName,
		Description: description,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.attachmentRepository.CreateAttachment(attachment); err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Attachment uploaded to lesson: %s (%s)", lesson.Title, fileName),
		&user.ID,
		&lesson.ProjectID,
	)

	return &AttachmentResponseDTO{
		ID:          attachment.ID,
		LessonID:    attachment.LessonID,
		UploadedBy:  attachment.UploadedBy,
		FileName:    attachment.FileName,
		Description: attachment.Description,
		ContentType: attachment.ContentType,
		SizeBytes:   attachment.SizeBytes,
		CreatedAt:   attachment.CreatedAt,
	}, nil
}

func (s *AttachmentService) GetAttachments(
	lessonID uuid.UUID,
	user *users_models.User,
) (*ListAttachmentsResponseDTO, error) {
	lesson, err := s.lessonRepository.GetLessonByID(lessonID)
	if err != nil {
		return nil, errors.New("lesson not found")
	}

	canAccess, _, err := s.projectService.CanUserAccessProject(lesson.ProjectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, errors.New("insufficient permissions to view this lesson")
	}

	attachments, err := s.attachmentRepository.GetAttachmentsByLessonID(lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments: %w", err)
	}

	return &ListAttachmentsResponseDTO{Attachments: attachments}, nil
}

func (s *AttachmentService) DownloadAttachment(
	attachmentID uuid.UUID,
	user *users_models.User,
) (*LessonAttachment, error) {
	attachment, err := s.attachmentRepository.GetAttachmentByID(attachmentID)
	if err != nil {
		return nil, errors.New("attachment not found")
	}

	lesson, err := s.lessonRepository.GetLessonByID(attachment.LessonID)
	if err != nil {
		return nil, errors.New("lesson not found")
	}

	canAccess, _, err := s.projectService.CanUserAccessProject(lesson.ProjectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, errors.New("insufficient permissions to view this lesson")
	}

	return attachment, nil
}

// DeleteAttachment removes an attachment. Only the uploader or an
// elevated user may delete; the lesson submitter gets no special right
// over other people's uploads.
func (s *AttachmentService) DeleteAttachment(attachmentID uuid.UUID, user *users_models.User) error {
	attachment, err := s.attachmentRepository.GetAttachmentByID(attachmentID)
	if err != nil {
		return errors.New("attachment not found")
	}

	if attachment.UploadedBy != user.ID && !user.Capabilities().Elevated {
		return errors.New("insufficient permissions to delete this attachment")
	}

	lesson, err := s.lessonRepository.GetLessonByID(attachment.LessonID)
	if err != nil {
		return errors.New("lesson not found")
	}

	if err := s.attachmentRepository.DeleteAttachment(attachmentID); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Attachment deleted from lesson: %s (%s)", lesson.Title, attachment.FileName),
		&user.ID,
		&lesson.ProjectID,
	)

	return nil
}
