package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	httpServer "github.com/youngnam81-kim/gov-bid-web/internal/app/http"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	configs.Init(configPath)
	logger := configs.Logger
	defer logger.Sync()

	api := backend.NewClient(
		configs.Configs.Backend.BaseURL,
		time.Duration(configs.Configs.Backend.TimeoutSec)*time.Second,
		logger,
	)
	boards := logics.NewBoardService(api, logger)
	details := logics.NewDetailRegistry(api, logger)

	srv, err := httpServer.NewServer(api, boards, details)
	if err != nil {
		logger.Fatal("Failed to initialize HTTP server", zap.Error(err))
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
