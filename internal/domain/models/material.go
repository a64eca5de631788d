// internal/domain/models/material.go
package models

import "time"

// Material is a bill-of-materials line item for a project.
type Material struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Description string `json:"description"`

	Manufacturer string `json:"manufacturer,omitempty"`
	PartNumber   string `json:"part_number,omitempty"`

	Unit     string  `json:"unit"` // each, feet, lot, ...
	Quantity float64 `json:"quantity"`

	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`

	LaborHours     float64 `json:"labor_hours,omitempty"`
	LaborRate      float64 `json:"labor_rate,omitempty"`
	TotalLaborCost float64 `json:"total_labor_cost,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
