package lessons_filtering

import (
	"github.com/google/uuid"
)

// FilterCriteriaDTO carries one optional constraint per axis. Absent
// fields do not constrain the result. ID fields stay strings so they
// can bind straight from query parameters.
type FilterCriteriaDTO struct {
	ProjectID   string `form:"projectId"   json:"projectId,omitempty"`
	CategoryID  string `form:"categoryId"  json:"categoryId,omitempty"`
	Status      string `form:"status"      json:"status,omitempty"`
	Impact      string `form:"impact"      json:"impact,omitempty"`
	SubmittedBy string `form:"submittedBy" json:"submittedBy,omitempty"`
	Search      string `form:"search"      json:"search,omitempty"`
	FromDate    string `form:"fromDate"    json:"fromDate,omitempty"`
	ToDate      string `form:"toDate"      json:"toDate,omitempty"`
	IsStarred   bool   `form:"starred"     json:"starred,omitempty"`
}

type FilterOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ProjectOptionDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryOptionDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// FilterOptionsResponseDTO feeds the filter dropdowns: enum values plus
// the projects and categories the acting user can actually see.
type FilterOptionsResponseDTO struct {
	Statuses   []FilterOptionDTO   `json:"statuses"`
	Impacts    []FilterOptionDTO   `json:"impacts"`
	Projects   []ProjectOptionDTO  `json:"projects"`
	Categories []CategoryOptionDTO `json:"categories"`
}
