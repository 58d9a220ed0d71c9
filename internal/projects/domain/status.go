package domain

import "strings"

// StatusCategory is one of the three display buckets for a project status.
type StatusCategory int

const (
	// CategoryDefault covers every status that is neither active nor paused,
	// including "Archived", the empty string and unknown labels.
	CategoryDefault StatusCategory = iota
	CategoryActive
	CategoryPaused
)

// CategoryOf maps a status label to its category, ignoring case and
// surrounding whitespace.
func CategoryOf(status string) StatusCategory {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active":
		return CategoryActive
	case "paused":
		return CategoryPaused
	default:
		return CategoryDefault
	}
}

// BadgeModifier is the CSS modifier used for the status badge.
func (c StatusCategory) BadgeModifier() string {
	switch c {
	case CategoryActive:
		return "active"
	case CategoryPaused:
		return "paused"
	default:
		return "archived"
	}
}

func (c StatusCategory) String() string {
	switch c {
	case CategoryActive:
		return "active"
	case CategoryPaused:
		return "paused"
	default:
		return "default"
	}
}
