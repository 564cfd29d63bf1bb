package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"delivery-tracker/internal/config"
	"delivery-tracker/internal/middleware"
	ordHnd "delivery-tracker/internal/orders/handler"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, h *ordHnd.Handler) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/import", h.Import)
		r.Post("/import/sheets", h.ImportSheets)

		r.Get("/orders", h.Orders)
		r.Post("/orders", h.CreateOrder)
		r.Patch("/orders/{id}", h.EditOrder)
		r.Patch("/orders/{id}/status", h.UpdateStatus)
		r.Post("/orders/bulk/status", h.BulkStatus)
		r.Post("/orders/bulk/company", h.BulkCompany)
		r.Post("/orders/{id}/contacted", h.MarkContacted)
		r.Post("/orders/{id}/manager-contacted", h.MarkManagerContacted)
		r.Put("/orders/{id}/image", h.SetImage)
		r.Delete("/orders/{id}/image", h.DeleteImage)
		r.Post("/images/clear", h.ClearImages)

		r.Get("/orders/{id}/message", h.CustomerMessage)
		r.Get("/orders/{id}/manager-report", h.ManagerReport)
		r.Get("/orders/{id}/permission-request", h.PermissionRequest)

		r.Get("/stats", h.Stats)

		r.Get("/archives", h.Archives)
		r.Post("/archives", h.ArchiveRound)
		r.Delete("/archives/{id}", h.DeleteArchive)

		r.Get("/settings", h.Settings)
		r.Put("/settings", h.SaveSettings)

		r.Post("/reset", h.Reset)
	})

	return r
}
