package lessons_core

type LessonImpact string

const (
	LessonImpactHigh   LessonImpact = "HIGH"
	LessonImpactMedium LessonImpact = "MEDIUM"
	LessonImpactLow    LessonImpact = "LOW"
)

func (i LessonImpact) IsValid() bool {
	switch i {
	case LessonImpactHigh, LessonImpactMedium, LessonImpactLow:
		return true
	}
	return false
}

// Label returns the human-readable form used in exports.
func (i LessonImpact) Label() string {
	switch i {
	case LessonImpactHigh:
		return "High"
	case LessonImpactMedium:
		return "Medium"
	case LessonImpactLow:
		return "Low"
	}
	return string(i)
}

type LessonStatus string

const (
	LessonStatusNew          LessonStatus = "NEW"
	LessonStatusAcknowledged LessonStatus = "ACKNOWLEDGED"
	LessonStatusInProgress   LessonStatus = "IN_PROGRESS"
	LessonStatusImplemented  LessonStatus = "IMPLEMENTED"
	LessonStatusArchived     LessonStatus = "ARCHIVED"
)

func (s LessonStatus) IsValid() bool {
	switch s {
	case LessonStatusNew, LessonStatusAcknowledged, LessonStatusInProgress,
		LessonStatusImplemented, LessonStatusArchived:
		return true
	}
	return false
}

// Label returns the human-readable form used in exports.
func (s LessonStatus) Label() string {
	switch s {
	case LessonStatusNew:
		return "New"
	case LessonStatusAcknowledged:
		return "Acknowledged"
	case LessonStatusInProgress:
		return "In Progress"
	case LessonStatusImplemented:
		return "Implemented"
	case LessonStatusArchived:
		return "Archived"
	}
	return string(s)
}

func AllLessonStatuses() []LessonStatus {
	return []LessonStatus{
		LessonStatusNew,
		LessonStatusAcknowledged,
		LessonStatusInProgress,
		LessonStatusImplemented,
		LessonStatusArchived,
	}
}

func AllLessonImpacts() []LessonImpact {
	return []LessonImpact{
		LessonImpactHigh,
		LessonImpactMedium,
		LessonImpactLow,
	}
}
