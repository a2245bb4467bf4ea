package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
	"github.com/dwisusanto/perf-tracker/internal/feedback"
	"github.com/dwisusanto/perf-tracker/internal/goal"
	"github.com/dwisusanto/perf-tracker/internal/review"
	"github.com/dwisusanto/perf-tracker/internal/skill"
	"github.com/dwisusanto/perf-tracker/internal/transport/middleware"
	"github.com/dwisusanto/perf-tracker/internal/transport/swagger"
	"github.com/dwisusanto/perf-tracker/internal/user"
	"github.com/go-chi/chi"
)

// Handlers groups one generic CRUD handler per entity.
type Handlers struct {
	User     *crud.Handler[userDatamodel.User, user.CreateUserDTO, user.UpdateUserDTO]
	Review   *crud.Handler[reviewDatamodel.Review, review.CreateReviewDTO, review.UpdateReviewDTO]
	Goal     *crud.Handler[goalDatamodel.Goal, goal.CreateGoalDTO, goal.UpdateGoalDTO]
	Skill    *crud.Handler[skillDatamodel.Skill, skill.CreateSkillDTO, skill.UpdateSkillDTO]
	Feedback *crud.Handler[feedbackDatamodel.Feedback, feedback.CreateFeedbackDTO, feedback.UpdateFeedbackDTO]
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers *Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	mountEntity(router, "/user", handlers.User)
	mountEntity(router, "/review", handlers.Review)
	mountEntity(router, "/goal", handlers.Goal)
	mountEntity(router, "/skill", handlers.Skill)
	mountEntity(router, "/feedback", handlers.Feedback)
}

// mountEntity wires the uniform verb set for one resource path.
func mountEntity[M, C, U any](router chi.Router, path string, h *crud.Handler[M, C, U]) {
	router.Route(path, func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
