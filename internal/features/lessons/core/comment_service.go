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

type CommentService struct {
	commentRepository *CommentRepository
	lessonRepository  *LessonRepository
	projectService    *projects_services.ProjectService
	auditLogService   *audit_logs.AuditLogService
}

// AddComment appends a comment to the lesson. Comments are immutable:
// there is no edit or delete.
func (s *CommentService) AddComment(
	lessonID uuid.UUID,
	request *AddCommentRequestDTO,
	user *users_models.User,
) (*CommentResponseDTO, []Event, error) {
	lesson, err := s.lessonRepository.GetLessonByID(lessonID)
	if err != nil {
		return nil, nil, errors.New("lesson not found")
	}

	canAccess, _, err := s.projectService.CanUserAccessProject(lesson.ProjectID, user)
	if err != nil {
		return nil, nil, err
	}
	if !canAccess {
		return nil, nil, errors.New("insufficient permissions to comment on this lesson")
	}

	comment := &LessonComment{
		ID:        uuid.New(),
		LessonID:  lessonID,
		AuthorID:  user.ID,
		Body:      request.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.commentRepository.CreateComment(comment); err != nil {
		return nil, nil, fmt.Errorf("failed to add comment: %w", err)
	}

	taggedUserIDs, err := s.lessonRepository.GetLessonTaggedUserIDs(lessonID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tagged users: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Comment added to lesson: %s", lesson.Title),
		&user.ID,
		&lesson.ProjectID,
	)

	response := &CommentResponseDTO{
		ID:             comment.ID,
		LessonID:       comment.LessonID,
		AuthorID:       comment.AuthorID,
		AuthorUsername: user.Username,
		Body:           comment.Body,
		CreatedAt:      comment.CreatedAt,
	}

	events := []Event{
		CommentAddedEvent{
			LessonID:          lesson.ID,
			ProjectID:         lesson.ProjectID,
			LessonTitle:       lesson.Title,
			ActorID:           user.ID,
			LessonSubmittedBy: lesson.SubmittedBy,
			TaggedUserIDs:     taggedUserIDs,
		},
	}

	return response, events, nil
}

func (s *CommentService) GetComments(
	lessonID uuid.UUID,
	user *users_models.User,
) (*ListCommentsResponseDTO, error) {
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

	comments, err := s.commentRepository.GetCommentsByLessonID(lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return &ListCommentsResponseDTO{Comments: comments}, nil
}
