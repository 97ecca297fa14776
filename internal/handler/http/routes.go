package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)

			// the community feed is readable by anyone, and download
			// counts come from clients that may not hold a session
			r.Get("/community", h.listCommunity)
			r.Post("/community/{id}/download", h.incrementDownload)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)
			r.Put("/user/preferences", h.updatePreferences)

			r.Get("/decks", h.listDecks)
			r.Post("/decks", h.saveDeck)
			r.Put("/decks/{id}", h.saveDeck)
			r.Delete("/decks/{id}", h.deleteDeck)

			r.Get("/notes", h.listNotes)
			r.Post("/notes", h.saveNote)
			r.Delete("/notes/{id}", h.deleteNote)

			r.Get("/tests", h.listExams)
			r.Post("/tests", h.saveExam)
			r.Delete("/tests/{id}", h.deleteExam)

			r.Get("/stats", h.getStats)
			r.Post("/stats", h.mergeStats)

			r.Get("/chats", h.listChats)
			r.Post("/chats", h.saveChat)

			r.Post("/community", h.publishCommunity)
		})
	})

	return router
}
