// Worker periodically deletes expired and long-deactivated auth sessions.
// Set DATABASE_URL and optionally CLEANUP_INTERVAL (default 1h).
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conversia/backend/internal/auth/repository"
	"conversia/backend/internal/config"
	"conversia/backend/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("worker: DATABASE_URL is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("worker: shutting down...")
		cancel()
	}()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("worker: db: %v", err)
	}
	defer pool.Close()

	sessions := repository.NewPostgresRepository(pool)
	interval := cfg.CleanupTick()

	log.Printf("worker: cleaning up sessions every %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup so a crash-looping worker still makes progress.
	cleanup(ctx, sessions)

	for {
		select {
		case <-ctx.Done():
			log.Println("worker: stopped")
			return
		case <-ticker.C:
			cleanup(ctx, sessions)
		}
	}
}

func cleanup(ctx context.Context, sessions *repository.PostgresRepository) {
	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	removed, err := sessions.CleanupExpiredSessions(runCtx)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("worker: cleanup failed: %v", err)
		}
		return
	}
	if removed > 0 {
		log.Printf("worker: removed %d sessions", removed)
	}
}
