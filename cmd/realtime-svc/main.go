package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gosocial-realtime/internal/di"
)

func main() {
	log.Println("Starting realtime service...")

	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize realtime service: %v", err)
	}
	defer cleanup()
	logger := app.Logger

	cfg := app.Config.Server
	server := &http.Server{
		Addr:           net.JoinHostPort(cfg.Host, cfg.HTTPPort),
		Handler:        app.Router,
		ReadTimeout:    time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Host, cfg.GRPCPort))
	if err != nil {
		logger.Error("failed to listen for grpc", "port", cfg.GRPCPort, "error", err)
		os.Exit(1)
	}

	errs := make(chan error, 2)
	go func() {
		logger.Info("http server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
	go func() {
		logger.Info("grpc server starting", "addr", lis.Addr().String())
		if err := app.GRPC.Serve(lis); err != nil {
			errs <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errs:
		logger.Error("server failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Live sockets are hijacked, so http.Server.Shutdown does not see them.
	app.Hub.Shutdown()
	app.WS.Close()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("http server forced to shutdown", "error", err)
	}
	app.GRPC.GracefulStop()

	logger.Info("realtime service stopped")
}
