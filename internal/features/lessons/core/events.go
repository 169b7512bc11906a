package lessons_core

import (
	"github.com/google/uuid"
)

// Events describe what a completed mutation did. Services return them
// alongside their results and controllers hand them to the dispatcher,
// so persistence and notification side effects stay separated.
type Event interface {
	EventName() string
}

type EventDispatcher interface {
	DispatchEvents(events []Event)
}

type LessonCreatedEvent struct {
	LessonID      uuid.UUID
	ProjectID     uuid.UUID
	LessonTitle   string
	ActorID       uuid.UUID
	TaggedUserIDs []uuid.UUID
}

func (LessonCreatedEvent) EventName() string { return "lesson.created" }

type LessonUpdatedEvent struct {
	LessonID      uuid.UUID
	ProjectID     uuid.UUID
	LessonTitle   string
	ActorID       uuid.UUID
	TaggedUserIDs []uuid.UUID
}

func (LessonUpdatedEvent) EventName() string { return "lesson.updated" }

type CommentAddedEvent struct {
	LessonID          uuid.UUID
	ProjectID         uuid.UUID
	LessonTitle       string
	ActorID           uuid.UUID
	LessonSubmittedBy uuid.UUID
	TaggedUserIDs     []uuid.UUID
}

func (CommentAddedEvent) EventName() string { return "lesson.comment_added" }
