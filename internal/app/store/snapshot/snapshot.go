// internal/app/store/snapshot/snapshot.go
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voltdesk/voltdesk/internal/domain/models"
)

// Key is the fixed identifier the snapshot blob is stored under in every
// backend. There is exactly one snapshot per deployment.
const Key = "voltdesk-data"

// CurrentVersion is the snapshot schema version written by this build.
const CurrentVersion = 1

// ErrIncompatible is returned when a stored blob declares a schema version
// this build does not understand.
var ErrIncompatible = errors.New("snapshot schema version not supported")

// Snapshot is the whole application state: every entity collection plus
// the cached session projection. It is always loaded and stored as one
// unit; there is no partial write.
type Snapshot struct {
	Version int `json:"version"`

	Users     []models.User            `json:"users"`
	Projects  []models.Project         `json:"projects"`
	Designs   []models.Design          `json:"designs"`
	Panels    []models.ElectricalPanel `json:"electrical_panels"`
	Circuits  []models.Circuit         `json:"circuits"`
	Materials []models.Material        `json:"materials"`

	// CurrentUser is the sole "is anyone signed in" signal. Nil means
	// signed out.
	CurrentUser *models.AuthUser `json:"current_user,omitempty"`

	Counters Counters `json:"counters"`
}

// Counters holds persisted sequences. Project numbers come from here, not
// from collection length, so deleting projects never frees a number.
type Counters struct {
	ProjectYear int `json:"project_year"`
	ProjectSeq  int `json:"project_seq"`
}

// Encode serializes a snapshot, stamping the current schema version.
func Encode(s Snapshot) ([]byte, error) {
	s.Version = CurrentVersion
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a stored blob. A blob from a newer schema surfaces
// ErrIncompatible instead of being half-read.
func Decode(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version > CurrentVersion {
		return Snapshot{}, fmt.Errorf("%w: got version %d, supports up to %d", ErrIncompatible, s.Version, CurrentVersion)
	}
	return s, nil
}
