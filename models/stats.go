package models

// Goal is a single study goal tracked in the user's stats.
type Goal struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done,omitempty"`
}

// UserStats is the one-to-one progress record of a user.
//
// Writes are merge-on-write: a partial record is shallow-merged into the
// stored one (zero-valued fields do not clobber existing data), never a
// whole-record replace. See service.mergeStats.
type UserStats struct {
	UserID string `json:"user_id,omitempty"`
	XP     int    `json:"xp,omitempty"`
	Goals  []Goal `json:"goals,omitempty"`
}
