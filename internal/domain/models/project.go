// internal/domain/models/project.go
package models

import "time"

// Project is an electrical-design project owned by a single user.
//
// OwnerID is a plain identifier back-reference, never an embedded User;
// callers resolve it against the user collection. ProjectNumber is a
// year-scoped sequential label assigned once at creation from a persisted
// counter and is never reused, even after deletes.
type Project struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ProjectNumber string `json:"project_number"`

	BuildingType string `json:"building_type"` // commercial | residential | industrial | institutional
	ProjectType  string `json:"project_type"`  // new_construction | renovation | addition | tenant_improvement

	BuildingSize float64 `json:"building_size,omitempty"` // square feet or meters, per owner preference
	Floors       int     `json:"floors,omitempty"`
	Occupancy    string  `json:"occupancy,omitempty"`

	Address   string   `json:"address,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zip_code,omitempty"`
	Country   string   `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	OwnerID string `json:"owner_id"`

	// Status may move between any two values; there is no enforced
	// transition graph.
	Status   string `json:"status"`   // draft | in_progress | review | approved | completed | archived
	Priority string `json:"priority"` // low | medium | high | urgent

	StartDate     *time.Time `json:"start_date,omitempty"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`

	DesignStandards DesignStandards `json:"design_standards"`

	ViewCount         int     `json:"view_count"`
	DesignGenerations int     `json:"design_generations"`
	TotalTimeSpent    float64 `json:"total_time_spent"` // hours

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Project statuses.
const (
	ProjectDraft      = "draft"
	ProjectInProgress = "in_progress"
	ProjectReview     = "review"
	ProjectApproved   = "approved"
	ProjectCompleted  = "completed"
	ProjectArchived   = "archived"
)

// Project priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// DesignStandards captures the electrical code context a project is
// designed against.
type DesignStandards struct {
	CodeYear         string   `json:"code_year"`
	LocalCodes       []string `json:"local_codes"`
	CompanyStandards []string `json:"company_standards"`
	VoltageSystem    string   `json:"voltage_system"`
	Phases           int      `json:"phases"`
	ServiceSize      int      `json:"service_size"` // amps
	UtilityVoltage   string   `json:"utility_voltage"`
}

// DefaultDesignStandards returns the standards block applied when a
// project is created without one.
func DefaultDesignStandards() DesignStandards {
	return DesignStandards{
		CodeYear:         "2023",
		LocalCodes:       []string{},
		CompanyStandards: []string{},
		VoltageSystem:    "120/208V",
		Phases:           3,
		ServiceSize:      200,
		UtilityVoltage:   "120/208V",
	}
}
