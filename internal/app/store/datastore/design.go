// internal/app/store/datastore/design.go
package datastore

import (
	"context"

	"go.uber.org/zap"

	"github.com/voltdesk/voltdesk/internal/app/system/metrics"
	"github.com/voltdesk/voltdesk/internal/domain/models"
)

// Designs returns every design, or only those of one project when
// projectID is non-empty.
func (s *Store) Designs(ctx context.Context, projectID string) ([]models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if projectID == "" {
		return snap.Designs, nil
	}
	out := make([]models.Design, 0, len(snap.Designs))
	for _, d := range snap.Designs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

// NewDesign is the input to CreateDesign.
type NewDesign struct {
	ProjectID   string
	Name        string
	Description string

	GenerationSettings *models.GenerationSettings
}

// CreateDesign appends a design with generation defaults and credits both
// the owning project's generation counter and the acting user's
// designs-generated counter in the same snapshot write.
func (s *Store) CreateDesign(ctx context.Context, nd NewDesign) (models.Design, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.Design{}, err
	}

	now := nowUTC()
	d := models.Design{
		ID:                 newID("design"),
		ProjectID:          nd.ProjectID,
		Name:               nd.Name,
		Version:            "1.0.0",
		Description:        nd.Description,
		Status:             models.DesignDraft,
		IsActive:           false,
		GenerationType:     models.GenerationAI,
		GenerationSettings: nd.GenerationSettings,
		GeneratedAt:        &now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if snap.CurrentUser != nil {
		d.GeneratedBy = snap.CurrentUser.ID
	}
	snap.Designs = append(snap.Designs, d)

	if snap.CurrentUser != nil {
		for i := range snap.Users {
			if snap.Users[i].ID == snap.CurrentUser.ID {
				snap.Users[i].DesignsGenerated++
				snap.Users[i].UpdatedAt = now
				break
			}
		}
	}
	for i := range snap.Projects {
		if snap.Projects[i].ID == nd.ProjectID {
			snap.Projects[i].DesignGenerations++
			snap.Projects[i].UpdatedAt = now
			break
		}
	}

	if err := s.save(ctx, snap); err != nil {
		return models.Design{}, err
	}
	metrics.DesignsGenerated.Inc()
	s.logger.Info("design generated",
		zap.String("design_id", d.ID),
		zap.String("project_id", d.ProjectID))
	return d, nil
}

// Panels returns the electrical panels of one design, or all panels when
// designID is empty.
func (s *Store) Panels(ctx context.Context, designID string) ([]models.ElectricalPanel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if designID == "" {
		return snap.Panels, nil
	}
	out := make([]models.ElectricalPanel, 0, len(snap.Panels))
	for _, p := range snap.Panels {
		if p.DesignID == designID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Circuits returns the circuits of one panel, or all circuits when
// panelID is empty.
func (s *Store) Circuits(ctx context.Context, panelID string) ([]models.Circuit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if panelID == "" {
		return snap.Circuits, nil
	}
	out := make([]models.Circuit, 0, len(snap.Circuits))
	for _, c := range snap.Circuits {
		if c.PanelID == panelID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Materials returns the bill-of-materials lines of one project, or all
// lines when projectID is empty.
func (s *Store) Materials(ctx context.Context, projectID string) ([]models.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if projectID == "" {
		return snap.Materials, nil
	}
	out := make([]models.Material, 0, len(snap.Materials))
	for _, m := range snap.Materials {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

// MaterialSummary aggregates a project's bill of materials.
type MaterialSummary struct {
	Lines          int     `json:"lines"`
	MaterialCost   float64 `json:"material_cost"`
	LaborHours     float64 `json:"labor_hours"`
	LaborCost      float64 `json:"labor_cost"`
	TotalInstalled float64 `json:"total_installed"`
}

// ProjectMaterialSummary totals material cost, labor hours, and labor
// cost for one project.
func (s *Store) ProjectMaterialSummary(ctx context.Context, projectID string) (MaterialSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return MaterialSummary{}, err
	}

	var sum MaterialSummary
	for _, m := range snap.Materials {
		if m.ProjectID != projectID {
			continue
		}
		sum.Lines++
		sum.MaterialCost += m.TotalCost
		sum.LaborHours += m.LaborHours
		sum.LaborCost += m.TotalLaborCost
	}
	sum.TotalInstalled = sum.MaterialCost + sum.LaborCost
	return sum, nil
}
