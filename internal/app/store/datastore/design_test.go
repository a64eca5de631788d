package datastore_test

import (
	"testing"

	"github.com/voltdesk/voltdesk/internal/app/store/datastore"
	"github.com/voltdesk/voltdesk/internal/domain/models"
	"github.com/voltdesk/voltdesk/internal/testutil"
)

func TestCreateDesign_DefaultsAndCounters(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	auth := testutil.SignIn(t, ctx, store)

	projects, err := store.Projects(ctx)
	if err != nil {
		t.Fatalf("Projects failed: %v", err)
	}
	proj := projects[0]

	d, err := store.CreateDesign(ctx, datastore.NewDesign{
		ProjectID: proj.ID,
		Name:      "Tower Base Build v3",
	})
	if err != nil {
		t.Fatalf("CreateDesign failed: %v", err)
	}

	if d.Version != "1.0.0" {
		t.Errorf("Version: got %q, want 1.0.0", d.Version)
	}
	if d.Status != models.DesignDraft {
		t.Errorf("Status: got %q, want %q", d.Status, models.DesignDraft)
	}
	if d.GenerationType != models.GenerationAI {
		t.Errorf("GenerationType: got %q, want %q", d.GenerationType, models.GenerationAI)
	}
	if d.GeneratedBy != auth.ID {
		t.Errorf("GeneratedBy: got %q, want %q", d.GeneratedBy, auth.ID)
	}
	if d.GeneratedAt == nil || !d.GeneratedAt.Equal(d.CreatedAt) {
		t.Errorf("GeneratedAt %v should match CreatedAt %v", d.GeneratedAt, d.CreatedAt)
	}

	// One call moves both counters together.
	u, err := store.User(ctx, auth.ID)
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if u.DesignsGenerated != 4 { // seeded with 3
		t.Errorf("user DesignsGenerated: got %d, want 4", u.DesignsGenerated)
	}
	got, err := store.Project(ctx, proj.ID)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if got.DesignGenerations != proj.DesignGenerations+1 {
		t.Errorf("project DesignGenerations: got %d, want %d", got.DesignGenerations, proj.DesignGenerations+1)
	}
}

func TestDesigns_FilterByProject(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	projects, _ := store.Projects(ctx)

	all, err := store.Designs(ctx, "")
	if err != nil {
		t.Fatalf("Designs failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("all designs: got %d, want 3", len(all))
	}

	first, err := store.Designs(ctx, projects[0].ID)
	if err != nil {
		t.Fatalf("Designs failed: %v", err)
	}
	if len(first) != 2 {
		t.Errorf("designs of first project: got %d, want 2", len(first))
	}
	for _, d := range first {
		if d.ProjectID != projects[0].ID {
			t.Errorf("design %s leaked from project %s", d.ID, d.ProjectID)
		}
	}

	none, err := store.Designs(ctx, "proj-missing")
	if err != nil {
		t.Fatalf("Designs failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown project: got %d designs, want 0", len(none))
	}
}

func TestPanelsAndCircuits_FilterByParent(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	designs, _ := store.Designs(ctx, "")

	panels, err := store.Panels(ctx, designs[0].ID)
	if err != nil {
		t.Fatalf("Panels failed: %v", err)
	}
	if len(panels) != 2 {
		t.Fatalf("panels of first design: got %d, want 2", len(panels))
	}

	// Seeded circuits all hang off the branch panel.
	var branch models.ElectricalPanel
	for _, p := range panels {
		if p.PanelType == "branch" {
			branch = p
		}
	}

	circuits, err := store.Circuits(ctx, branch.ID)
	if err != nil {
		t.Fatalf("Circuits failed: %v", err)
	}
	if len(circuits) != 2 {
		t.Errorf("circuits of branch panel: got %d, want 2", len(circuits))
	}

	empty, err := store.Circuits(ctx, panels[0].ID)
	if err != nil {
		t.Fatalf("Circuits failed: %v", err)
	}
	if branch.ID != panels[0].ID && len(empty) != 0 {
		t.Errorf("main panel should have no circuits, got %d", len(empty))
	}
}

func TestProjectMaterialSummary(t *testing.T) {
	store := testutil.NewStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	projects, _ := store.Projects(ctx)

	sum, err := store.ProjectMaterialSummary(ctx, projects[0].ID)
	if err != nil {
		t.Fatalf("ProjectMaterialSummary failed: %v", err)
	}
	if sum.Lines != 1 {
		t.Errorf("Lines: got %d, want 1", sum.Lines)
	}
	if sum.MaterialCost != 17200 {
		t.Errorf("MaterialCost: got %v, want 17200", sum.MaterialCost)
	}
	if sum.LaborHours != 64 {
		t.Errorf("LaborHours: got %v, want 64", sum.LaborHours)
	}
	if sum.LaborCost != 6272 {
		t.Errorf("LaborCost: got %v, want 6272", sum.LaborCost)
	}
	if sum.TotalInstalled != 17200+6272 {
		t.Errorf("TotalInstalled: got %v, want %v", sum.TotalInstalled, 17200+6272)
	}

	empty, err := store.ProjectMaterialSummary(ctx, "proj-missing")
	if err != nil {
		t.Fatalf("ProjectMaterialSummary failed: %v", err)
	}
	if empty != (datastore.MaterialSummary{}) {
		t.Errorf("unknown project summary not zero: %+v", empty)
	}
}
