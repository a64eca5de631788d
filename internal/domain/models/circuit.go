// internal/domain/models/circuit.go
package models

import "time"

// Circuit is a single breaker position on an electrical panel.
type Circuit struct {
	ID            string `json:"id"`
	PanelID       string `json:"panel_id"`
	CircuitNumber int    `json:"circuit_number"`
	Description   string `json:"description"`

	CircuitType string `json:"circuit_type"` // lighting | receptacle | motor | hvac | special | spare

	Voltage  int `json:"voltage"`
	Phases   int `json:"phases"`
	Amperage int `json:"amperage"`

	WireSize    string  `json:"wire_size"`
	WireType    string  `json:"wire_type"`
	ConduitType string  `json:"conduit_type,omitempty"`
	ConduitSize string  `json:"conduit_size,omitempty"`
	Length      float64 `json:"length,omitempty"` // feet

	Load float64 `json:"load"` // VA

	ProtectionType string `json:"protection_type"` // circuit_breaker | fuse
	ProtectionSize int    `json:"protection_size"` // amps

	IsGfciProtected bool `json:"is_gfci_protected"`
	IsAfciProtected bool `json:"is_afci_protected"`

	CreatedAt time.Time `json:"created_at"`
}
