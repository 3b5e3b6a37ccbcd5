package api

import (
	"database/sql"

	courseAPI "coursesync/internal/app/server/api/http/course"
	healthAPI "coursesync/internal/app/server/api/http/health"
	"coursesync/internal/app/server/api/http/middleware"
	"coursesync/internal/app/server/api/http/middleware/logger"
	syncAPI "coursesync/internal/app/server/api/http/sync"
	todoAPI "coursesync/internal/app/server/api/http/todo"
	coursedomain "coursesync/internal/domain/course"
	tododomain "coursesync/internal/domain/todo"
	syncengine "coursesync/internal/sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Course *courseAPI.Handler
	Todo   *todoAPI.Handler
	Sync   *syncAPI.Handler
}

// New builds a *chi.Mux wired with every operation via huma.Register.
func New(db *sql.DB, courseRepo coursedomain.Repository, todoRepo tododomain.Repository, reconciler *syncengine.Reconciler, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Coursesync API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(db, courseRepo, todoRepo, reconciler, log)
	h.Health.SetupRoutes(API)
	h.Course.SetupRoutes(API)
	h.Todo.SetupRoutes(API)
	h.Sync.SetupRoutes(API)

	return mux
}

func handlers(db *sql.DB, courseRepo coursedomain.Repository, todoRepo tododomain.Repository, reconciler *syncengine.Reconciler, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(db, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	courseHandler := courseAPI.NewHandler(courseRepo, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	todoHandler := todoAPI.NewHandler(todoRepo, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	syncHandler := syncAPI.NewHandler(reconciler, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Course: courseHandler,
		Todo:   todoHandler,
		Sync:   syncHandler,
	}
}
