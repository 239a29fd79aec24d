package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// RouterOptions bundles the handlers and the cross-cutting settings the
// router needs.
type RouterOptions struct {
	Periods     *PeriodHandler
	Movements   *MovementHandler
	Checkpoints *CheckpointHandler
	Validations *ValidationHandler

	AllowedOrigins []string
	// Limiter is optional; nil disables rate limiting.
	Limiter *rate.Limiter
}

func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(ContextualLoggerMiddleware)
	r.Use(CORSMiddleware(opts.AllowedOrigins))
	if opts.Limiter != nil {
		r.Use(RateLimitMiddleware(opts.Limiter))
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, r, http.StatusOK, map[string]string{"message": "Bank reconciliation backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/periods", func(r chi.Router) {
			r.Post("/", opts.Periods.HandleCreatePeriod)
			r.Get("/", opts.Periods.HandleListPeriods)

			r.Route("/{periodId}", func(r chi.Router) {
				r.Use(UUIDParamMiddleware("periodId"))

				r.Get("/", opts.Periods.HandleGetPeriod)
				r.Put("/", opts.Periods.HandleUpdatePeriod)
				r.Delete("/", opts.Periods.HandleDeletePeriod)

				r.Post("/movements", opts.Movements.HandleCreateMovement)
				r.Post("/movements/import", opts.Movements.HandleImportMovements)
				r.Get("/movements", opts.Movements.HandleListMovements)

				r.Post("/checkpoints", opts.Checkpoints.HandleCreateCheckpoint)
				r.Get("/checkpoints", opts.Checkpoints.HandleListCheckpoints)

				r.Post("/validations", opts.Validations.HandleCreateValidation)
				r.Get("/validations", opts.Validations.HandleListValidations)
				r.Get("/validations/current", opts.Validations.HandleGetCurrentValidation)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(UUIDParamMiddleware("id"))

			r.Get("/movements/{id}", opts.Movements.HandleGetMovement)
			r.Delete("/movements/{id}", opts.Movements.HandleDeleteMovement)

			r.Get("/checkpoints/{id}", opts.Checkpoints.HandleGetCheckpoint)
			r.Patch("/checkpoints/{id}", opts.Checkpoints.HandleUpdateCheckpoint)
			r.Delete("/checkpoints/{id}", opts.Checkpoints.HandleDeleteCheckpoint)

			r.Get("/validations/{id}", opts.Validations.HandleGetValidation)
			r.Delete("/validations/{id}", opts.Validations.HandleDeleteValidation)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			sendJSONError(w, "resource not found", http.StatusNotFound)
			return
		}
		http.NotFound(w, r)
	})

	return r
}
