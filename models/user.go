package models

import "time"

// Preferences holds per-user UI settings. They travel with the profile and
// are mirrored into local storage so the client can render correctly while
// offline.
type Preferences struct {
	// Theme is the UI theme mode, e.g. "light" or "dark".
	Theme string `json:"theme,omitempty"`

	// ColorScheme is the accent color scheme identifier.
	ColorScheme string `json:"color_scheme,omitempty"`

	// SeasonalEffects toggles decorative seasonal UI effects.
	SeasonalEffects bool `json:"seasonal_effects,omitempty"`
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user. It is stable for the
	// lifetime of the account.
	ID string `json:"id"`

	// Email is the unique login identifier. Uniqueness is enforced at
	// registration time.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. It exists only
	// in the server-side document; client-facing representations must be
	// produced via [User.Public].
	PasswordHash string `json:"password_hash,omitempty"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Avatar is an optional reference to the user's avatar image.
	Avatar string `json:"avatar,omitempty"`

	// Preferences holds the user's UI preference set.
	Preferences Preferences `json:"preferences"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Public returns a copy of the user safe for client-facing serialization:
// the credential hash is stripped. Every handler response and every value
// cached on the client must go through this.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
