package models

import "time"

// ChatMessage is a single message inside a chat session.
type ChatMessage struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ChatSession is an ordered conversation owned by exactly one user.
type ChatSession struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id,omitempty"`
	Title      string        `json:"title"`
	Messages   []ChatMessage `json:"messages"`
	LastActive time.Time     `json:"last_active"`
}
