package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hliu742/minichat/internal/config"
	"github.com/hliu742/minichat/internal/handler"
	"github.com/hliu742/minichat/internal/service/ai"
	"github.com/hliu742/minichat/internal/service/chat"
	"github.com/hliu742/minichat/internal/service/history"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// The model gateway is initialized once, best effort. A failure is not
	// fatal: the service stays up and answers with echoes instead.
	var generator ai.Generator
	if cfg.AI.Enabled() {
		generator, err = ai.New(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize model gateway: %v", err)
			log.Println("continuing in echo mode - check the model provider environment variables")
			generator = nil
		} else {
			log.Printf("model gateway initialized, provider=%s model=%s", cfg.AI.Provider, cfg.AI.Model)
		}
	} else {
		log.Println("model credentials not configured, running in echo mode")
	}

	store := history.NewStore()
	chatSvc := chat.NewService(store, generator)

	router := handler.NewRouter(chatSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("minichat backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
