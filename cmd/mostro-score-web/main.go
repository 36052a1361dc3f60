package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpInterface "github.com/MostroP2P/mostro-score-web/internal/interfaces/http"
	"github.com/MostroP2P/mostro-score-web/internal/interfaces/http/handler"
	"github.com/MostroP2P/mostro-score-web/pkg/config"
	"github.com/MostroP2P/mostro-score-web/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log.Level)

	staticHandler := handler.NewStaticHandler(cfg.Assets.Root, log)
	router := httpInterface.NewRouter(staticHandler, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Bind before printing the banner; a taken port is fatal.
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.Error("Failed to bind listener", err, "addr", server.Addr)
		os.Exit(1)
	}

	fmt.Printf("Mostro Score Web running at http://%s\n", server.Addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
