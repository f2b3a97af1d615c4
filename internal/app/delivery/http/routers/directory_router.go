package routers

import (
	"labclinics-service/internal/app/services/core/directory"

	"github.com/go-chi/chi/v5"
)

// The public directory carries no auth: everything under it is the
// anonymous visitor surface.
func attachDirectoryRoutes(router chi.Router, directoryController *directory.DirectoryController) {
	router.Get("/", directoryController.ListDirectory)
	router.Get("/filters", directoryController.GetFilters)
	router.Get("/profile", directoryController.GetProfile)
	router.Get("/stream", directoryController.StreamDirectory)
}
