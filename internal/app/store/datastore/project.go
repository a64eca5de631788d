// internal/app/store/datastore/project.go
package datastore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.uber.org/zap"

	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
	"github.com/voltdesk/voltdesk/internal/app/system/metrics"
	"github.com/voltdesk/voltdesk/internal/domain/models"
)

// Projects returns every project in insertion order.
func (s *Store) Projects(ctx context.Context) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Projects, nil
}

// Project looks a project up by id.
func (s *Store) Project(ctx context.Context, id string) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.Project{}, err
	}
	for _, p := range snap.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// SearchProjects filters by a case-folded substring over name and
// description, and optionally by status. Empty arguments match all.
func (s *Store) SearchProjects(ctx context.Context, query, status string) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	q := text.Fold(strings.TrimSpace(query))
	out := make([]models.Project, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		if status != "" && p.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(text.Fold(p.Name), q) &&
			!strings.Contains(text.Fold(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// NewProject is the input to CreateProject. Only Name is required; every
// other field has a defined default.
type NewProject struct {
	Name        string
	Description string

	BuildingType string
	ProjectType  string

	BuildingSize float64
	Floors       int
	Occupancy    string

	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Latitude  *float64
	Longitude *float64

	Priority   string
	StartDate  *time.Time
	TargetDate *time.Time

	DesignStandards *models.DesignStandards
}

// nextProjectNumber advances the persisted year-scoped sequence. The
// sequence survives deletes, so numbers are never reused within a year.
func nextProjectNumber(c *snapshot.Counters, now time.Time) string {
	if c.ProjectYear != now.Year() {
		c.ProjectYear = now.Year()
		c.ProjectSeq = 0
	}
	c.ProjectSeq++
	return fmt.Sprintf("PRJ-%d-%03d", c.ProjectYear, c.ProjectSeq)
}

// CreateProject synthesizes a project with defaults for everything the
// caller omitted and credits the acting user's created counter. The owner
// falls back to the literal "unknown" when nobody is signed in; the call
// itself never fails for that reason.
func (s *Store) CreateProject(ctx context.Context, np NewProject) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.Project{}, err
	}

	ownerID := "unknown"
	if snap.CurrentUser != nil {
		ownerID = snap.CurrentUser.ID
	}

	now := nowUTC()
	p := models.Project{
		ID:            newID("proj"),
		Name:          np.Name,
		Description:   np.Description,
		ProjectNumber: nextProjectNumber(&snap.Counters, now),
		BuildingType:  np.BuildingType,
		ProjectType:   np.ProjectType,
		BuildingSize:  np.BuildingSize,
		Floors:        np.Floors,
		Occupancy:     np.Occupancy,
		Address:       np.Address,
		City:          np.City,
		State:         np.State,
		ZipCode:       np.ZipCode,
		Country:       np.Country,
		Latitude:      np.Latitude,
		Longitude:     np.Longitude,
		OwnerID:       ownerID,
		Status:        models.ProjectDraft,
		Priority:      np.Priority,
		StartDate:     np.StartDate,
		TargetDate:    np.TargetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.BuildingType == "" {
		p.BuildingType = "commercial"
	}
	if p.ProjectType == "" {
		p.ProjectType = "new_construction"
	}
	if p.Country == "" {
		p.Country = "USA"
	}
	if p.Priority == "" {
		p.Priority = models.PriorityMedium
	}
	if np.DesignStandards != nil {
		p.DesignStandards = *np.DesignStandards
	} else {
		p.DesignStandards = models.DefaultDesignStandards()
	}

	snap.Projects = append(snap.Projects, p)

	for i := range snap.Users {
		if snap.Users[i].ID == ownerID {
			snap.Users[i].ProjectsCreated++
			snap.Users[i].UpdatedAt = now
			break
		}
	}

	if err := s.save(ctx, snap); err != nil {
		return models.Project{}, err
	}
	metrics.ProjectsCreated.Inc()
	s.logger.Info("project created",
		zap.String("project_id", p.ID),
		zap.String("project_number", p.ProjectNumber),
		zap.String("owner_id", ownerID))
	return p, nil
}

// ProjectPatch enumerates the project fields an update may change. Nil
// fields are left untouched; unknown fields cannot be smuggled in.
type ProjectPatch struct {
	Name        *string
	Description *string

	BuildingType *string
	ProjectType  *string

	BuildingSize *float64
	Floors       *int
	Occupancy    *string

	Address *string
	City    *string
	State   *string
	ZipCode *string
	Country *string

	Status   *string
	Priority *string

	StartDate     *time.Time
	TargetDate    *time.Time
	CompletedDate *time.Time

	DesignStandards *models.DesignStandards
}

// UpdateProject shallow-merges the patch over the record and refreshes
// UpdatedAt. There is no optimistic-concurrency check and no status
// transition graph: the last writer wins and any status may follow any
// other.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return models.Project{}, err
	}

	for i := range snap.Projects {
		p := &snap.Projects[i]
		if p.ID != id {
			continue
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.BuildingType != nil {
			p.BuildingType = *patch.BuildingType
		}
		if patch.ProjectType != nil {
			p.ProjectType = *patch.ProjectType
		}
		if patch.BuildingSize != nil {
			p.BuildingSize = *patch.BuildingSize
		}
		if patch.Floors != nil {
			p.Floors = *patch.Floors
		}
		if patch.Occupancy != nil {
			p.Occupancy = *patch.Occupancy
		}
		if patch.Address != nil {
			p.Address = *patch.Address
		}
		if patch.City != nil {
			p.City = *patch.City
		}
		if patch.State != nil {
			p.State = *patch.State
		}
		if patch.ZipCode != nil {
			p.ZipCode = *patch.ZipCode
		}
		if patch.Country != nil {
			p.Country = *patch.Country
		}
		if patch.Status != nil {
			p.Status = *patch.Status
			if p.Status == models.ProjectArchived && p.ArchivedAt == nil {
				t := nowUTC()
				p.ArchivedAt = &t
			}
		}
		if patch.Priority != nil {
			p.Priority = *patch.Priority
		}
		if patch.StartDate != nil {
			p.StartDate = patch.StartDate
		}
		if patch.TargetDate != nil {
			p.TargetDate = patch.TargetDate
		}
		if patch.CompletedDate != nil {
			p.CompletedDate = patch.CompletedDate
		}
		if patch.DesignStandards != nil {
			p.DesignStandards = *patch.DesignStandards
		}
		p.UpdatedAt = nowUTC()

		if err := s.save(ctx, snap); err != nil {
			return models.Project{}, err
		}
		return *p, nil
	}
	return models.Project{}, ErrNotFound
}

// DeleteProject removes the project and cascades the whole dependency
// chain: its designs, the panels of those designs, the circuits of those
// panels, and its materials. Nothing is orphaned.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range snap.Projects {
		if snap.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	snap.Projects = append(snap.Projects[:idx], snap.Projects[idx+1:]...)

	deadDesigns := make(map[string]bool)
	designs := snap.Designs[:0]
	for _, d := range snap.Designs {
		if d.ProjectID == id {
			deadDesigns[d.ID] = true
			continue
		}
		designs = append(designs, d)
	}
	snap.Designs = designs

	deadPanels := make(map[string]bool)
	panels := snap.Panels[:0]
	for _, p := range snap.Panels {
		if deadDesigns[p.DesignID] {
			deadPanels[p.ID] = true
			continue
		}
		panels = append(panels, p)
	}
	snap.Panels = panels

	circuits := snap.Circuits[:0]
	for _, c := range snap.Circuits {
		if deadPanels[c.PanelID] {
			continue
		}
		circuits = append(circuits, c)
	}
	snap.Circuits = circuits

	materials := snap.Materials[:0]
	for _, m := range snap.Materials {
		if m.ProjectID == id {
			continue
		}
		materials = append(materials, m)
	}
	snap.Materials = materials

	if err := s.save(ctx, snap); err != nil {
		return err
	}
	s.logger.Info("project deleted",
		zap.String("project_id", id),
		zap.Int("designs_removed", len(deadDesigns)))
	return nil
}

// RecordProjectView bumps a project's view counter.
func (s *Store) RecordProjectView(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range snap.Projects {
		if snap.Projects[i].ID == id {
			snap.Projects[i].ViewCount++
			return s.save(ctx, snap)
		}
	}
	return ErrNotFound
}

// AddProjectTime accumulates hours spent on a project.
func (s *Store) AddProjectTime(ctx context.Context, id string, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range snap.Projects {
		if snap.Projects[i].ID == id {
			snap.Projects[i].TotalTimeSpent += hours
			return s.save(ctx, snap)
		}
	}
	return ErrNotFound
}
