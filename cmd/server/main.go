package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumeforge/internal/app/server/api"
	"resumeforge/internal/app/server/config"
	"resumeforge/internal/domain/export"
	"resumeforge/internal/domain/template"
	"resumeforge/internal/infrastructure/storage/sqlite"
	"resumeforge/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	storage, err := sqlite.New(conf.Storage.DSN)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	renderer, err := template.NewRenderer(log)
	if err != nil {
		log.Error("failed to init renderer", "error", err)
		os.Exit(1)
	}

	opts := export.DefaultOptions()
	opts.Compress = conf.Export.Compress
	opts.Scale = conf.Export.Scale

	engine := export.NewChromiumEngine(log)
	exporter := export.NewService(renderer, engine, opts, log)

	mux := api.New(storage, renderer, exporter, log)

	server := &http.Server{
		Addr:    conf.Server.RunAddress,
		Handler: mux,
	}

	go func() {
		log.Info("server started", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// Черновики живут в памяти, при остановке они пропадают
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
