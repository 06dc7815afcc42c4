package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTracing)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)
		r.Post("/user", h.registerUser)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/profile", h.profile)

		r.Get("/user", h.currentUser)
		r.Patch("/user", h.updateUser)
		r.Get("/user/{id}", h.getUser)
		r.Delete("/user/{id}", h.deleteUser)

		r.Route("/bank-account", func(r chi.Router) {
			r.Post("/", h.createBankAccount)
			r.Get("/", h.listBankAccounts)
			r.Get("/{id}", h.getBankAccount)
			r.Patch("/{id}", h.updateBankAccount)
			r.Delete("/{id}", h.deleteBankAccount)
		})

		r.Route("/category", func(r chi.Router) {
			r.Post("/", h.createCategory)
			r.Get("/", h.listCategories)
			r.Get("/{id}", h.getCategory)
			r.Patch("/{id}", h.updateCategory)
			r.Delete("/{id}", h.deleteCategory)
		})

		r.Route("/transaction", func(r chi.Router) {
			r.Post("/", h.createTransaction)
			r.Get("/", h.listTransactions)
			r.Get("/{id}", h.getTransaction)
			r.Patch("/{id}", h.updateTransaction)
			r.Delete("/{id}", h.deleteTransaction)
		})

		r.Get("/dashboard/data", h.dashboard)
	})

	router.MethodNotAllowed(CheckHTTPMethod)
	router.NotFound(notFound)

	return router
}
