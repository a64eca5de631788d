// internal/domain/models/design.go
package models

import "time"

// Design is one generated floorplan analysis belonging to exactly one
// project. Creating a design bumps both the owning project's generation
// counter and the acting user's designs-generated counter in the same
// store mutation.
type Design struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Status   string `json:"status"` // generating | draft | in_review | approved | rejected
	IsActive bool   `json:"is_active"`

	GenerationType     string              `json:"generation_type"` // ai_generated | manual | template_based | imported
	GenerationSettings *GenerationSettings `json:"generation_settings,omitempty"`

	GeneratedBy string     `json:"generated_by,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Design statuses.
const (
	DesignGenerating = "generating"
	DesignDraft      = "draft"
	DesignInReview   = "in_review"
	DesignApproved   = "approved"
	DesignRejected   = "rejected"
)

// Design generation types.
const (
	GenerationAI       = "ai_generated"
	GenerationManual   = "manual"
	GenerationTemplate = "template_based"
	GenerationImported = "imported"
)

// GenerationSettings is the optional payload the AI workflow was invoked
// with; stored verbatim for reproducing a run.
type GenerationSettings struct {
	LoadDensity    string `json:"load_density"`
	Redundancy     string `json:"redundancy"`
	Efficiency     string `json:"efficiency"`
	CodeCompliance string `json:"code_compliance"`
}
