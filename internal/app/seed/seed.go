// internal/app/seed/seed.go
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/voltdesk/voltdesk/internal/app/store/snapshot"
	"github.com/voltdesk/voltdesk/internal/domain/models"
)

// Demo account credentials. These exist only in freshly seeded snapshots.
const (
	AdminEmail    = "admin@voltdesk.io"
	EngineerEmail = "schen@voltdesk.io"
	ViewerEmail   = "mrivera@voltdesk.io"
	DemoSecret    = "voltdesk-demo"
)

// Snapshot builds the fixed first-boot collections. It is consumed
// exactly once by the data store's lazy bootstrap and never re-applied.
func Snapshot() snapshot.Snapshot {
	hash := mustHash(DemoSecret)

	jan := time.Date(2024, time.January, 8, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 14, 15, 30, 0, 0, time.UTC)
	jun := time.Date(2024, time.June, 2, 11, 15, 0, 0, time.UTC)

	users := []models.User{
		{
			ID:          "user-a1b4c020-5c2e-4f89-9af1-2d6f00000001",
			Email:       AdminEmail,
			SecretHash:  hash,
			FirstName:   "Dana",
			LastName:    "Whitfield",
			Role:        models.RoleAdmin,
			IsVerified:  true,
			IsActive:    true,
			Preferences: models.DefaultPreferences(),
			CreatedAt:   jan,
			UpdatedAt:   jan,
		},
		{
			ID:         "user-a1b4c020-5c2e-4f89-9af1-2d6f00000002",
			Email:      EngineerEmail,
			SecretHash: hash,
			FirstName:  "Sarah",
			LastName:   "Chen",
			Phone:      "555-0142",
			Role:       models.RoleSeniorEngineer,
			IsVerified: true,
			IsActive:   true,
			Preferences: models.Preferences{
				Notifications: models.NotificationPrefs{Email: true, Desktop: true, Mobile: false},
				Units:         "imperial",
				CodeStandards: []string{"NEC", "IEEE"},
				AutoSave:      true,
				Theme:         "dark",
			},
			ProjectsCreated:  2,
			DesignsGenerated: 3,
			TotalUsageHours:  41.5,
			CreatedAt:        jan,
			UpdatedAt:        jun,
		},
		{
			ID:          "user-a1b4c020-5c2e-4f89-9af1-2d6f00000003",
			Email:       ViewerEmail,
			SecretHash:  hash,
			FirstName:   "Marco",
			LastName:    "Rivera",
			Role:        models.RoleViewer,
			IsVerified:  true,
			IsActive:    false, // disabled account, must not be able to sign in
			Preferences: models.DefaultPreferences(),
			CreatedAt:   mar,
			UpdatedAt:   mar,
		},
	}

	projects := []models.Project{
		{
			ID:            "proj-7f0e1d30-91aa-4c6b-8e2d-5b3a00000001",
			Name:          "Riverside Office Tower",
			Description:   "Twelve-story commercial office, core and shell electrical",
			ProjectNumber: "PRJ-2024-001",
			BuildingType:  "commercial",
			ProjectType:   "new_construction",
			BuildingSize:  185000,
			Floors:        12,
			Occupancy:     "Business",
			Address:       "400 Riverside Dr",
			City:          "Austin",
			State:         "TX",
			ZipCode:       "78701",
			Country:       "USA",
			OwnerID:       "user-a1b4c020-5c2e-4f89-9af1-2d6f00000002",
			Status:        models.ProjectInProgress,
			Priority:      models.PriorityHigh,
			DesignStandards: models.DesignStandards{
				CodeYear:         "2023",
				LocalCodes:       []string{"Austin Energy Criteria"},
				CompanyStandards: []string{"VD-E-100"},
				VoltageSystem:    "277/480V",
				Phases:           3,
				ServiceSize:      2000,
				UtilityVoltage:   "277/480V",
			},
			ViewCount:         34,
			DesignGenerations: 2,
			TotalTimeSpent:    26.5,
			CreatedAt:         jan,
			UpdatedAt:         jun,
		},
		{
			ID:                "proj-7f0e1d30-91aa-4c6b-8e2d-5b3a00000002",
			Name:              "Maple Street Duplex",
			Description:       "Residential renovation, service upgrade to 200A",
			ProjectNumber:     "PRJ-2024-002",
			BuildingType:      "residential",
			ProjectType:       "renovation",
			BuildingSize:      3200,
			Floors:            2,
			Address:           "118 Maple St",
			City:              "Austin",
			State:             "TX",
			ZipCode:           "78704",
			Country:           "USA",
			OwnerID:           "user-a1b4c020-5c2e-4f89-9af1-2d6f00000002",
			Status:            models.ProjectCompleted,
			Priority:          models.PriorityMedium,
			DesignStandards:   models.DefaultDesignStandards(),
			ViewCount:         12,
			DesignGenerations: 1,
			TotalTimeSpent:    8.0,
			CreatedAt:         mar,
			UpdatedAt:         jun,
		},
		{
			ID:              "proj-7f0e1d30-91aa-4c6b-8e2d-5b3a00000003",
			Name:            "Northgate Fabrication Hall",
			Description:     "Industrial addition with motor control center",
			ProjectNumber:   "PRJ-2024-003",
			BuildingType:    "industrial",
			ProjectType:     "addition",
			BuildingSize:    54000,
			Floors:          1,
			City:            "Round Rock",
			State:           "TX",
			Country:         "USA",
			OwnerID:         "user-a1b4c020-5c2e-4f89-9af1-2d6f00000001",
			Status:          models.ProjectDraft,
			Priority:        models.PriorityLow,
			DesignStandards: models.DefaultDesignStandards(),
			CreatedAt:       jun,
			UpdatedAt:       jun,
		},
	}

	designs := []models.Design{
		{
			ID:             "design-3c9d2e40-77bb-4a1c-9f3e-6c4b00000001",
			ProjectID:      projects[0].ID,
			Name:           "Tower Base Build v1",
			Version:        "1.0.0",
			Status:         models.DesignApproved,
			IsActive:       true,
			GenerationType: models.GenerationAI,
			GenerationSettings: &models.GenerationSettings{
				LoadDensity:    "high",
				Redundancy:     "n+1",
				Efficiency:     "premium",
				CodeCompliance: "NEC 2023",
			},
			GeneratedBy: users[1].ID,
			GeneratedAt: &mar,
			CreatedAt:   mar,
			UpdatedAt:   jun,
		},
		{
			ID:             "design-3c9d2e40-77bb-4a1c-9f3e-6c4b00000002",
			ProjectID:      projects[0].ID,
			Name:           "Tower Base Build v2",
			Version:        "1.1.0",
			Status:         models.DesignInReview,
			GenerationType: models.GenerationAI,
			GeneratedBy:    users[1].ID,
			GeneratedAt:    &jun,
			CreatedAt:      jun,
			UpdatedAt:      jun,
		},
		{
			ID:             "design-3c9d2e40-77bb-4a1c-9f3e-6c4b00000003",
			ProjectID:      projects[1].ID,
			Name:           "Duplex Service Upgrade",
			Version:        "1.0.0",
			Status:         models.DesignApproved,
			IsActive:       true,
			GenerationType: models.GenerationManual,
			GeneratedBy:    users[1].ID,
			GeneratedAt:    &mar,
			CreatedAt:      mar,
			UpdatedAt:      mar,
		},
	}

	panels := []models.ElectricalPanel{
		{
			ID:                 "panel-5e8f3a50-12cc-4d7e-8a9b-7d5c00000001",
			DesignID:           designs[0].ID,
			Name:               "MSB-1",
			PanelType:          "main_service",
			Manufacturer:       "Square D",
			Model:              "QED-2",
			Amperage:           2000,
			Voltage:            480,
			Phases:             3,
			BusConfiguration:   "3P4W",
			ShortCircuitRating: 65000,
			Location:           "Level 1 Electrical Room",
			Coordinates:        &models.Coordinates{X: 4.2, Y: 0, Z: 11.8},
			TotalLoad:          1420000,
			ConnectedLoad:      1675000,
			DemandFactor:       0.85,
			CreatedAt:          mar,
		},
		{
			ID:           "panel-5e8f3a50-12cc-4d7e-8a9b-7d5c00000002",
			DesignID:     designs[0].ID,
			Name:         "LP-3A",
			PanelType:    "branch",
			Manufacturer: "Square D",
			Model:        "NQ",
			Amperage:     225,
			Voltage:      208,
			Phases:       3,
			Location:     "Level 3 Electrical Closet",
			FeedFrom:     "panel-5e8f3a50-12cc-4d7e-8a9b-7d5c00000001",
			CreatedAt:    mar,
		},
	}

	circuits := []models.Circuit{
		{
			ID:              "circuit-9a1b4c60-34dd-4e8f-b0c1-8e6d00000001",
			PanelID:         panels[1].ID,
			CircuitNumber:   1,
			Description:     "Level 3 open office lighting",
			CircuitType:     "lighting",
			Voltage:         277,
			Phases:          1,
			Amperage:        20,
			WireSize:        "12 AWG",
			WireType:        "THHN",
			ConduitType:     "EMT",
			ConduitSize:     "3/4\"",
			Length:          140,
			Load:            1850,
			ProtectionType:  "circuit_breaker",
			ProtectionSize:  20,
			CreatedAt:       mar,
		},
		{
			ID:              "circuit-9a1b4c60-34dd-4e8f-b0c1-8e6d00000002",
			PanelID:         panels[1].ID,
			CircuitNumber:   3,
			Description:     "Break room receptacles",
			CircuitType:     "receptacle",
			Voltage:         120,
			Phases:          1,
			Amperage:        20,
			WireSize:        "12 AWG",
			WireType:        "THHN",
			Load:            1200,
			ProtectionType:  "circuit_breaker",
			ProtectionSize:  20,
			IsGfciProtected: true,
			CreatedAt:       mar,
		},
	}

	materials := []models.Material{
		{
			ID:             "material-2d7e5f70-56ee-4f90-c1d2-9f7e00000001",
			ProjectID:      projects[0].ID,
			Category:       "Distribution",
			Subcategory:    "Panelboards",
			Description:    "225A 3P4W branch panelboard, 42 circuit",
			Manufacturer:   "Square D",
			PartNumber:     "NQ442L2C",
			Unit:           "each",
			Quantity:       8,
			UnitCost:       2150,
			TotalCost:      17200,
			LaborHours:     64,
			LaborRate:      98,
			TotalLaborCost: 6272,
			CreatedAt:      mar,
		},
		{
			ID:             "material-2d7e5f70-56ee-4f90-c1d2-9f7e00000002",
			ProjectID:      projects[1].ID,
			Category:       "Service",
			Subcategory:    "Meter Equipment",
			Description:    "200A meter main combo, NEMA 3R",
			Unit:           "each",
			Quantity:       1,
			UnitCost:       640,
			TotalCost:      640,
			LaborHours:     6,
			LaborRate:      92,
			TotalLaborCost: 552,
			CreatedAt:      mar,
		},
	}

	return snapshot.Snapshot{
		Users:     users,
		Projects:  projects,
		Designs:   designs,
		Panels:    panels,
		Circuits:  circuits,
		Materials: materials,
		Counters:  snapshot.Counters{ProjectYear: 2024, ProjectSeq: len(projects)},
	}
}

func mustHash(secret string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		panic(err) // only fails on invalid cost
	}
	return string(h)
}
