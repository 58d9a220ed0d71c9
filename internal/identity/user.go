// Package identity holds the mock signed-in user. The user is built once
// from configuration at startup and passed to whatever renders it.
package identity

import (
	"strings"

	"github.com/GoSim-25-26J-441/projects-overview/config"
)

const (
	fallbackInitials = "US"
	fallbackName     = "User"
)

// User is the signed-in user shown in the navbar.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromConfig builds the mock user.
func FromConfig(cfg config.IdentityConfig) User {
	return User{
		ID:    strings.TrimSpace(cfg.UserID),
		Name:  strings.TrimSpace(cfg.UserName),
		Email: strings.TrimSpace(cfg.UserEmail),
	}
}

// DisplayName returns the name, or "User" when it is blank.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return fallbackName
	}
	return u.Name
}

// Initials returns the avatar initials for the user.
func (u User) Initials() string {
	return Initials(u.Name)
}

// Initials takes the first letter of each of the first two
// space-separated words of name, uppercased. A blank name yields "US".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return fallbackInitials
	}
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}
