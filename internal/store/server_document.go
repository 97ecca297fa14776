package store

import "github.com/akarimov/study-keeper/models"

// Document is the server's entire persistent state as one JSON document.
// The dataset is small (a study tool, not a data warehouse), so a single
// atomically rewritten file beats running a database server for it.
//
// All slices are append-ordered; services own any per-user filtering.
type Document struct {
	Users     []models.User          `json:"users"`
	Decks     []models.Deck          `json:"decks"`
	Notes     []models.Note          `json:"notes"`
	Exams     []models.Exam          `json:"tests"`
	Stats     []models.UserStats     `json:"stats"`
	Chats     []models.ChatSession   `json:"chats"`
	Community []models.CommunityItem `json:"community"`
}

// UserByEmail returns the user with the given email, if any.
func (d *Document) UserByEmail(email string) (models.User, bool) {
	for _, u := range d.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByID returns the user with the given id, if any.
func (d *Document) UserByID(id string) (models.User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
