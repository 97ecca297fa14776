package models

import "time"

// Exam is an upcoming exam record: a date and the topics to revise for it.
// The REST surface exposes these under /tests for historical reasons.
type Exam struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id,omitempty"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"`
	Topics []string  `json:"topics,omitempty"`
}
