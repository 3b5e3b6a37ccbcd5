package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursesync/internal/config"
	"coursesync/internal/migration"
	"coursesync/internal/remote"
	"coursesync/internal/storage/sqlite"
	"coursesync/internal/sync"
	"coursesync/internal/utils/logger"

	"coursesync/internal/app/server/api"
)

func main() {
	cfg := config.NewConfig()
	log := logger.New(cfg.Env)

	store, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := migration.NewMigration(cfg).Up(store.DB()); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	courseRepo := sqlite.NewCourseRepository(store)
	todoRepo := sqlite.NewTodoRepository(store)

	var adapter remote.Adapter
	if cfg.HasNotionCredentials() {
		adapter = remote.NewHTTPAdapter(cfg.Notion.Token, cfg.Notion.CoursesDBID, cfg.Notion.TodosDBID, log)
		log.Info("remote adapter configured", "kind", "http")
	} else {
		log.Warn("no Notion credentials configured, sync will run against an empty remote")
		adapter = remote.NewFakeAdapter()
	}

	reconciler := sync.NewReconciler(courseRepo, todoRepo, adapter, log)

	scheduler, err := sync.NewScheduler(reconciler, time.Duration(cfg.Sync.IntervalSecs)*time.Second, log)
	if err != nil {
		log.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go scheduler.Run(ctx)

	mux := api.New(store.DB(), courseRepo, todoRepo, reconciler, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("http server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("shutting down", "signal", sig.String())
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}

	log.Info("server stopped")
}
