package models

import "time"

// Note is a free-form study document owned by exactly one user.
// Content is rich text (HTML) produced by the editor.
type Note struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id,omitempty"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject,omitempty"`
	Content    string    `json:"content"`
	Background string    `json:"background,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
