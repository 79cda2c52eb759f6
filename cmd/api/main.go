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

	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/config"
	"github.com/sudarshan-lab/MyInteractivePortfolio/internal/handler"
	boardModel "github.com/sudarshan-lab/MyInteractivePortfolio/internal/model/board"
	assistantService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/assistant"
	conversationService "github.com/sudarshan-lab/MyInteractivePortfolio/internal/service/conversation"
	mongoStore "github.com/sudarshan-lab/MyInteractivePortfolio/internal/storage/mongo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Board store: MongoDB when configured, otherwise in-memory for
	// local development.
	var store boardModel.Store
	if cfg.Mongo.Enabled() {
		mongo, err := mongoStore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
		if err != nil {
			log.Fatalf("failed to connect to the database: %v", err)
		}
		defer func() {
			if err := mongo.Close(context.Background()); err != nil {
				log.Printf("failed to disconnect from the database: %v", err)
			}
		}()
		store = mongo
		log.Println("connected to document store")
	} else {
		store = boardModel.NewMemoryStore()
		log.Println("MONGODB_URI not set, using in-memory board (messages are lost on restart)")
	}

	conversations := conversationService.NewService()

	var assistant *assistantService.Service
	if cfg.AI.Enabled() {
		assistant, err = assistantService.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize assistant service: %v", err)
			log.Println("continuing without the chat assistant")
		} else {
			log.Println("assistant service initialized successfully")
		}
	} else {
		log.Println("Ark credentials not configured, skipping assistant initialization")
	}

	router := handler.NewRouter(store, conversations, assistant, cfg.Board.AllowedOrigins)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio backend listening on %s", serverCfg.Addr)
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
