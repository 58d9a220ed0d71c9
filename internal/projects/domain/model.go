package domain

import "time"

// Project is the display data for one project card.
// It is storage-agnostic and shared by the repository, service and view layers.
// Values are never mutated after a repository hands them out.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
	Status      string    `json:"status"`
}

// UpdatedAtMillis returns UpdatedAt as epoch milliseconds.
func (p Project) UpdatedAtMillis() int64 {
	return p.UpdatedAt.UnixMilli()
}

// Category derives the display bucket from the free-text status.
func (p Project) Category() StatusCategory {
	return CategoryOf(p.Status)
}

// CloneProjects returns a copy of in backed by a new array.
// A nil or empty input yields an empty, non-nil slice.
func CloneProjects(in []Project) []Project {
	out := make([]Project, len(in))
	copy(out, in)
	return out
}

// SampleProjects builds the fixed demo catalog relative to now.
func SampleProjects(now time.Time) []Project {
	now = now.UTC().Truncate(time.Millisecond)
	day := 24 * time.Hour

	return []Project{
		{
			ID:          "p-001",
			Name:        "Marketing Website Refresh",
			Description: "Revamp the landing pages with improved SEO and accessibility.",
			UpdatedAt:   now.Add(-1 * day),
			Status:      "Active",
		},
		{
			ID:          "p-002",
			Name:        "Mobile App Prototype",
			Description: "Low-fidelity prototype for the onboarding flow.",
			UpdatedAt:   now.Add(-3 * day),
			Status:      "Paused",
		},
		{
			ID:          "p-003",
			Name:        "Data Pipeline V2",
			Description: "Introduce event-driven architecture for ingestion.",
			UpdatedAt:   now.Add(-5 * time.Hour),
			Status:      "Active",
		},
		{
			ID:          "p-004",
			Name:        "Design System",
			Description: "Build reusable components and tokens.",
			UpdatedAt:   now.Add(-12 * day),
			Status:      "Archived",
		},
		{
			ID:          "p-005",
			Name:        "Internal Dashboard",
			Description: "Metrics and reporting for stakeholders.",
			UpdatedAt:   now.Add(-48 * time.Hour),
			Status:      "Active",
		},
		{
			ID:          "p-006",
			Name:        "API Gateway",
			Description: "Consolidate microservice endpoints.",
			UpdatedAt:   now.Add(-72 * time.Hour),
			Status:      "Paused",
		},
	}
}
