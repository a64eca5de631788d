// internal/app/system/metrics/metrics.go
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Logins counts login attempts by outcome ("ok" or "denied").
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltdesk_logins_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Registrations counts registration attempts by outcome.
	Registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltdesk_registrations_total",
			Help: "Total number of registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	// ProjectsCreated counts successful project creations.
	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voltdesk_projects_created_total",
			Help: "Total number of projects created",
		},
	)

	// DesignsGenerated counts successful design generations.
	DesignsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voltdesk_designs_generated_total",
			Help: "Total number of designs generated",
		},
	)

	// SnapshotStores counts full snapshot writes to the backend.
	SnapshotStores = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voltdesk_snapshot_stores_total",
			Help: "Total number of snapshot writes",
		},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry. Exposition is the
// embedding application's concern; the data core only increments.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Logins)
		prometheus.MustRegister(Registrations)
		prometheus.MustRegister(ProjectsCreated)
		prometheus.MustRegister(DesignsGenerated)
		prometheus.MustRegister(SnapshotStores)
	})
}
