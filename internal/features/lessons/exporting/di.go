package lessons_exporting

import (
	lessons_filtering "lessonbook/internal/features/lessons/filtering"
	"lessonbook/internal/util/rate_limit"
)

var (
	exportService = &ExportService{
		filterService: lessons_filtering.GetFilterService(),
	}

	exportController = &ExportController{
		exportService: exportService,
		rateLimiter:   rate_limit.NewRateLimiter(),
	}
)

func GetExportService() *ExportService {
	return exportService
}

func GetExportController() *ExportController {
	return exportController
}
