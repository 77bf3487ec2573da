package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface, the live feeds, the view
// resolution endpoints, and the admin-token-gated mutations.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public reads
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/categories", handlers.categoryHandler.getCategories())

		// View resolution: the `project` query parameter contract
		r.Get("/view", handlers.viewHandler.getView())
		r.Get("/view/feed", handlers.viewHandler.streamView())

		// Live collection snapshots
		r.Get("/feed/{collection}", handlers.feedHandler.streamCollection())

		// Admin surface
		r.Post("/admin/verify", handlers.adminHandler.verifyPasskey())
		r.Get("/admin", handlers.adminHandler.adminOverview())

		// Locale
		r.Get("/locale", handlers.adminHandler.getLocale())
		r.Put("/locale", handlers.adminHandler.setLocale())

		// Gated mutations
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/project", handlers.projectHandler.createProject())
			r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/category", handlers.categoryHandler.createCategory())
			r.Delete("/category/{categoryValue}", handlers.categoryHandler.deleteCategory())
		})
	})
}
