package lessons_core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	audit_logs "lessonbook/internal/features/audit_logs"
	"lessonbook/internal/features/categories"
	projects_services "lessonbook/internal/features/projects/services"
	users_models "lessonbook/internal/features/users/models"
	time_parser "lessonbook/internal/util/time"

	"github.com/google/uuid"
)

type LessonService struct {
	lessonRepository *LessonRepository
	projectService   *projects_services.ProjectService
	categoryService  *categories.CategoryService
	auditLogService  *audit_logs.AuditLogService
}

func (s *LessonService) CreateLesson(
	request *CreateLessonRequestDTO,
	user *users_models.User,
) (*LessonResponseDTO, []Event, error) {
	canAccess, _, err := s.projectService.CanUserAccessProject(request.ProjectID, user)
	if err != nil {
		return nil, nil, err
	}
	if !canAccess {
		return nil, nil, errors.New("insufficient permissions to add lessons to this project")
	}

	dateIdentified, ok := time_parser.ParseDate(request.DateIdentified)
	if !ok {
		return nil, nil, errors.New("invalid date identified format")
	}

	if !request.Impact.IsValid() {
		return nil, nil, errors.New("invalid lesson impact")
	}

	status := request.Status
	if status == "" {
		status = LessonStatusNew
	}
	if !status.IsValid() {
		return nil, nil, errors.New("invalid lesson status")
	}

	categoryID, err := s.resolveCategory(request.CategoryID, request.CategoryName)
	if err != nil {
		return nil, nil, err
	}

	taggedUserIDs, err := s.validateTaggedUsers(request.ProjectID, request.TaggedUserIDs, user.ID)
	if err != nil {
		return nil, nil, err
	}

	lesson := &Lesson{
		ID:                  uuid.New(),
		ProjectID:           request.ProjectID,
		CategoryID:          categoryID,
		Title:               request.Title,
		Description:         request.Description,
		Recommendations:     request.Recommendations,
		DateIdentified:      dateIdentified,
		Impact:              request.Impact,
		Status:              status,
		ImplementationNotes: request.ImplementationNotes,
		SubmittedBy:         user.ID,
		CreatedAt:           time.Now().UTC(),
		ModifiedAt:          time.Now().UTC(),
	}

	if err := s.lessonRepository.CreateLesson(lesson); err != nil {
		return nil, nil, fmt.Errorf("failed to create lesson: %w", err)
	}

	if len(taggedUserIDs) > 0 {
		if err := s.lessonRepository.ReplaceLessonTags(lesson.ID, taggedUserIDs); err != nil {
			return nil, nil, fmt.Errorf("failed to tag users: %w", err)
		}
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Lesson created: %s", lesson.Title),
		&user.ID,
		&lesson.ProjectID,
	)

	response, err := s.buildLessonResponse(lesson.ID, user.ID)
	if err != nil {
		return nil, nil, err
	}

	events := []Event{
		LessonCreatedEvent{
			LessonID:      lesson.ID,
			ProjectID:     lesson.ProjectID,
			LessonTitle:   lesson.Title,
			ActorID:       user.ID,
			TaggedUserIDs: taggedUserIDs,
		},
	}

	return response, events, nil
}

func (s *LessonService) GetLesson(lessonID uuid.UUID, user *users_models.User) (*LessonResponseDTO, error) {
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

	return s.buildLessonResponse(lessonID, user.ID)
}

// UpdateLesson replaces every mutable field. Only the submitter or an
// elevated user can edit, regardless of project role. The submitter
// and project never change.
func (s *LessonService) UpdateLesson(
	lessonID uuid.UUID,
	request *UpdateLessonRequestDTO,
	user *users_models.User,
) (*LessonResponseDTO, []Event, error) {
	lesson, err := s.lessonRepository.GetLessonByID(lessonID)
	if err != nil {
		return nil, nil, errors.New("lesson not found")
	}

	if err := s.validateCanModifyLesson(lesson, user, "edit"); err != nil {
		return nil, nil, err
	}

	dateIdentified, ok := time_parser.ParseDate(request.DateIdentified)
	if !ok {
		return nil, nil, errors.New("invalid date identified format")
	}

	if !request.Impact.IsValid() {
		return nil, nil, errors.New("invalid lesson impact")
	}
	if !request.Status.IsValid() {
		return nil, nil, errors.New("invalid lesson status")
	}

	categoryID, err := s.resolveCategory(request.CategoryID, request.CategoryName)
	if err != nil {
		return nil, nil, err
	}

	taggedUserIDs, err := s.validateTaggedUsers(lesson.ProjectID, request.TaggedUserIDs, lesson.SubmittedBy)
	if err != nil {
		return nil, nil, err
	}

	lesson.CategoryID = categoryID
	lesson.Title = request.Title
	lesson.Description = request.Description
	lesson.Recommendations = request.Recommendations
	lesson.DateIdentified = dateIdentified
	lesson.Impact = request.Impact
	lesson.Status = request.Status
	lesson.ImplementationNotes = request.ImplementationNotes

	if err := s.lessonRepository.UpdateLesson(lesson); err != nil {
		return nil, nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	if err := s.lessonRepository.ReplaceLessonTags(lesson.ID, taggedUserIDs); err != nil {
		return nil, nil, fmt.Errorf("failed to update tags: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Lesson updated: %s", lesson.Title),
		&user.ID,
		&lesson.ProjectID,
	)

	response, err := s.buildLessonResponse(lesson.ID, user.ID)
	if err != nil {
		return nil, nil, err
	}

	events := []Event{
		LessonUpdatedEvent{
			LessonID:      lesson.ID,
			ProjectID:     lesson.ProjectID,
			LessonTitle:   lesson.Title,
			ActorID:       user.ID,
			TaggedUserIDs: taggedUserIDs,
		},
	}

	return response, events, nil
}

func (s *LessonService) DeleteLesson(lessonID uuid.UUID, user *users_models.User) error {
	lesson, err := s.lessonRepository.GetLessonByID(lessonID)
	if err != nil {
		return errors.New("lesson not found")
	}

	if err := s.validateCanModifyLesson(lesson, user, "delete"); err != nil {
		return err
	}

	if err := s.lessonRepository.DeleteLesson(lessonID); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Lesson deleted: %s", lesson.Title),
		&user.ID,
		&lesson.ProjectID,
	)

	return nil
}

// ToggleStar flips the calling user's star on the lesson. Starring an
// already starred lesson removes the star, so repeated calls are safe.
func (s *LessonService) ToggleStar(lessonID uuid.UUID, user *users_models.User) (*ToggleStarResponseDTO, error) {
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

	existingStar, err := s.lessonRepository.GetStar(lessonID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check star: %w", err)
	}

	isStarred := false
	if existingStar == nil {
		star := &LessonStar{
			LessonID: lessonID,
			UserID:   user.ID,
		}
		if err := s.lessonRepository.CreateStar(star); err != nil {
			return nil, fmt.Errorf("failed to star lesson: %w", err)
		}
		isStarred = true
	} else {
		if err := s.lessonRepository.DeleteStar(lessonID, user.ID); err != nil {
			return nil, fmt.Errorf("failed to unstar lesson: %w", err)
		}
	}

	starCount, err := s.lessonRepository.CountStars(lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to count stars: %w", err)
	}

	return &ToggleStarResponseDTO{
		IsStarred: isStarred,
		StarCount: starCount,
	}, nil
}

func (s *LessonService) GetLessonModel(lessonID uuid.UUID) (*Lesson, error) {
	return s.lessonRepository.GetLessonByID(lessonID)
}

func (s *LessonService) validateCanModifyLesson(lesson *Lesson, user *users_models.User, action string) error {
	// Project role does not matter here: even a project owner cannot
	// touch another member's lesson unless they are elevated
	if lesson.SubmittedBy != user.ID && !user.Capabilities().Elevated {
		return fmt.Errorf("insufficient permissions to %s this lesson", action)
	}

	return nil
}

func (s *LessonService) resolveCategory(categoryID *uuid.UUID, categoryName string) (*uuid.UUID, error) {
	if categoryID != nil {
		category, err := s.categoryService.GetCategory(*categoryID)
		if err != nil {
			return nil, errors.New("category not found")
		}
		return &category.ID, nil
	}

	// Whitespace-only names mean no category
	if categoryName = strings.TrimSpace(categoryName); categoryName != "" {
		category, err := s.categoryService.GetOrCreateCategory(categoryName, "")
		if err != nil {
			return nil, err
		}
		return &category.ID, nil
	}

	return nil, nil
}

// validateTaggedUsers ensures every tagged user belongs to the lesson's
// project and drops the author from the list.
func (s *LessonService) validateTaggedUsers(
	projectID uuid.UUID,
	taggedUserIDs []uuid.UUID,
	authorID uuid.UUID,
) ([]uuid.UUID, error) {
	if len(taggedUserIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	memberIDs, err := s.projectService.GetProjectMemberUserIDs(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	members := make(map[uuid.UUID]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = true
	}

	validated := make([]uuid.UUID, 0, len(taggedUserIDs))
	seen := make(map[uuid.UUID]bool, len(taggedUserIDs))
	for _, userID := range taggedUserIDs {
		if userID == authorID || seen[userID] {
			continue
		}
		if !members[userID] {
			return nil, errors.New("tagged users must be members of the lesson's project")
		}
		seen[userID] = true
		validated = append(validated, userID)
	}

	return validated, nil
}

func (s *LessonService) buildLessonResponse(lessonID, viewerID uuid.UUID) (*LessonResponseDTO, error) {
	row, err := s.lessonRepository.GetLessonRowByID(lessonID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lesson: %w", err)
	}

	taggedUsers, err := s.lessonRepository.GetLessonTaggedUsers(lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tagged users: %w", err)
	}

	return &LessonResponseDTO{
		LessonRow:   *row,
		TaggedUsers: taggedUsers,
	}, nil
}
