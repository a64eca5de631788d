// internal/domain/models/panel.go
package models

import "time"

// ElectricalPanel is a distribution panel placed by a design.
type ElectricalPanel struct {
	ID       string `json:"id"`
	DesignID string `json:"design_id"`
	Name     string `json:"name"`

	PanelType    string `json:"panel_type"` // main_service | main_distribution | distribution | branch | motor_control
	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`

	Amperage int `json:"amperage"`
	Voltage  int `json:"voltage"`
	Phases   int `json:"phases"`

	BusConfiguration   string `json:"bus_configuration,omitempty"`
	ShortCircuitRating int    `json:"short_circuit_rating,omitempty"` // AIC

	Location    string       `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	FeedFrom    string       `json:"feed_from,omitempty"` // upstream panel id

	TotalLoad     float64 `json:"total_load,omitempty"`
	ConnectedLoad float64 `json:"connected_load,omitempty"`
	DemandFactor  float64 `json:"demand_factor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Coordinates is a panel placement within the 3D room model.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
