// internal/app/store/datastore/analytics.go
package datastore

import "context"

// AIRequestQuota is the per-user allowance of AI generation requests in
// the current plan tier.
const AIRequestQuota = 5

// Analytics is the dashboard aggregate, scoped to the signed-in user's
// projects. All figures derive from persisted state, so two calls without
// an intervening mutation return equal values.
type Analytics struct {
	TotalProjects     int `json:"total_projects"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
	TotalDesigns      int `json:"total_designs"`

	AIRequestsUsed      int `json:"ai_requests_used"`
	AIRequestsRemaining int `json:"ai_requests_remaining"`

	TotalUsers  int `json:"total_users"`
	ActiveUsers int `json:"active_users"`

	TotalTimeSpent float64 `json:"total_time_spent"`
}

// Analytics aggregates over the current user's owned projects. AI usage
// comes from the user's designs-generated counter held against the fixed
// quota; there is no randomness anywhere in the result.
func (s *Store) Analytics(ctx context.Context) (Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return Analytics{}, err
	}
	if snap.CurrentUser == nil {
		return Analytics{}, ErrNotSignedIn
	}
	userID := snap.CurrentUser.ID

	var a Analytics
	owned := make(map[string]bool)
	for _, p := range snap.Projects {
		if p.OwnerID != userID {
			continue
		}
		owned[p.ID] = true
		a.TotalProjects++
		switch p.Status {
		case "in_progress":
			a.ActiveProjects++
		case "completed":
			a.CompletedProjects++
		}
		a.TotalTimeSpent += p.TotalTimeSpent
	}

	for _, d := range snap.Designs {
		if owned[d.ProjectID] {
			a.TotalDesigns++
		}
	}

	for _, u := range snap.Users {
		a.TotalUsers++
		if u.IsActive {
			a.ActiveUsers++
		}
		if u.ID == userID {
			used := u.DesignsGenerated
			if used > AIRequestQuota {
				used = AIRequestQuota
			}
			a.AIRequestsUsed = used
			a.AIRequestsRemaining = AIRequestQuota - used
		}
	}

	return a, nil
}
