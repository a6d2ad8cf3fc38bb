package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Delete("/api/logout/{token}", h.logoutByToken)
	})

	// routes requiring a session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/transactions/{kind}", h.createTransaction)
		r.Get("/api/transactions", h.listTransactions)
		r.Delete("/api/logout", h.logout)
	})

	return router
}
