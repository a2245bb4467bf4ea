package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dwisusanto/perf-tracker/internal"
	feedbackDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/feedback"
	goalDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/goal"
	reviewDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/review"
	skillDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/skill"
	userDatamodel "github.com/dwisusanto/perf-tracker/internal/core/datamodel/user"
	"github.com/dwisusanto/perf-tracker/internal/crud"
	crudPostgres "github.com/dwisusanto/perf-tracker/internal/crud/postgres"
	"github.com/dwisusanto/perf-tracker/internal/feedback"
	"github.com/dwisusanto/perf-tracker/internal/goal"
	"github.com/dwisusanto/perf-tracker/internal/review"
	"github.com/dwisusanto/perf-tracker/internal/skill"
	"github.com/dwisusanto/perf-tracker/internal/transport"
	"github.com/dwisusanto/perf-tracker/internal/transport/rest"
	"github.com/dwisusanto/perf-tracker/internal/user"
	userPostgres "github.com/dwisusanto/perf-tracker/internal/user/postgres"
	"github.com/dwisusanto/perf-tracker/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Env)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, buildHandlers(gormDB, lg), lg)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: router,
	}, nil
}

// buildHandlers composes repositories, services and handlers once at
// process start; everything downstream receives its collaborators
// explicitly.
func buildHandlers(db *gorm.DB, lg *slog.Logger) *rest.Handlers {
	base := transport.NewBaseHandler(lg)

	userRepo := crudPostgres.NewRepository[userDatamodel.User](db, "id ASC")
	reviewRepo := crudPostgres.NewRepository[reviewDatamodel.Review](db, "id ASC", "User", "Reviewer")
	goalRepo := crudPostgres.NewRepository[goalDatamodel.Goal](db, "id ASC")
	skillRepo := crudPostgres.NewRepository[skillDatamodel.Skill](db, "id ASC")
	feedbackRepo := crudPostgres.NewRepository[feedbackDatamodel.Feedback](db, "id ASC", "User", "GivenBy")

	userSvc := user.NewService(userRepo, userPostgres.NewDependentsRepository(db), lg)
	reviewSvc := review.NewService(reviewRepo, userRepo, lg)
	goalSvc := goal.NewService(goalRepo, userRepo, lg)
	skillSvc := skill.NewService(skillRepo, userRepo, lg)
	feedbackSvc := feedback.NewService(feedbackRepo, userRepo, lg)

	return &rest.Handlers{
		User:     crud.NewHandler[userDatamodel.User, user.CreateUserDTO, user.UpdateUserDTO](base, userSvc, "user"),
		Review:   crud.NewHandler[reviewDatamodel.Review, review.CreateReviewDTO, review.UpdateReviewDTO](base, reviewSvc, "review"),
		Goal:     crud.NewHandler[goalDatamodel.Goal, goal.CreateGoalDTO, goal.UpdateGoalDTO](base, goalSvc, "goal"),
		Skill:    crud.NewHandler[skillDatamodel.Skill, skill.CreateSkillDTO, skill.UpdateSkillDTO](base, skillSvc, "skill"),
		Feedback: crud.NewHandler[feedbackDatamodel.Feedback, feedback.CreateFeedbackDTO, feedback.UpdateFeedbackDTO](base, feedbackSvc, "feedback"),
	}
}

// initDB opens the pooled connection the whole process shares.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
