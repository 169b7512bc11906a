package lessons_core

import (
	"lessonbook/internal/features/audit_logs"
	"lessonbook/internal/features/categories"
	projects_services "lessonbook/internal/features/projects/services"
)

var (
	lessonRepository     = &LessonRepository{}
	commentRepository    = &CommentRepository{}
	attachmentRepository = &AttachmentRepository{}

	lessonService = &LessonService{
		lessonRepository: lessonRepository,
		projectService:   projects_services.GetProjectService(),
		categoryService:  categories.GetCategoryService(),
		auditLogService:  audit_logs.GetAuditLogService(),
	}

	commentService = &CommentService{
		commentRepository: commentRepository,
		lessonRepository:  lessonRepository,
		projectService:    projects_services.GetProjectService(),
		auditLogService:   audit_logs.GetAuditLogService(),
	}

	attachmentService = &AttachmentService{
		attachmentRepository: attachmentRepository,
		lessonRepository:     lessonRepository,
		projectService:       projects_services.GetProjectService(),
		auditLogService:      audit_logs.GetAuditLogService(),
	}

	lessonController = &LessonController{
		lessonService:     lessonService,
		commentService:    commentService,
		attachmentService: attachmentService,
	}
)

func GetLessonService() *LessonService {
	return lessonService
}

func GetCommentService() *CommentService {
	return commentService
}

func GetAttachmentService() *AttachmentService {
	return attachmentService
}

func GetLessonRepository() *LessonRepository {
	return lessonRepository
}

func GetLessonController() *LessonController {
	return lessonController
}
