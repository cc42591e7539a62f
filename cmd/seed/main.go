// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"conversia/backend/internal/config"
	"conversia/backend/internal/db"
	"conversia/backend/internal/security"
)

const (
	devUserEmail = "dev@example.com"
	devUserName  = "Dev User"
	devPassword  = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	var exists bool
	err = pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, devUserEmail).Scan(&exists)
	if err != nil {
		log.Fatalf("seed: check dev user: %v", err)
	}
	if exists {
		log.Printf("seed: dev user %s already exists, nothing to do", devUserEmail)
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, email, name, role, password_hash, is_active)
		VALUES ($1, $2, $3, 'user', $4, TRUE)`,
		uuid.NewString(), devUserEmail, devUserName, hash,
	)
	if err != nil {
		log.Fatalf("seed: insert dev user: %v", err)
	}

	log.Printf("seed: created dev user %s (password %q)", devUserEmail, devPassword)
}
