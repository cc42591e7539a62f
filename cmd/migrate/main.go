// migrate brings the conversia auth schema up (or rolls it back) using the
// SQL files embedded in internal/db.
package main

import (
	"errors"
	"flag"
	"log"

	"conversia/backend/internal/config"
	"conversia/backend/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "apply (up) or roll back (down) the auth schema")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("migrate: config: %v", err)
	}

	err = migrate.Run(cfg.DatabaseURL, migrate.Direction(*direction))
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("migrate: schema already at target version")
	case err != nil:
		log.Fatal(err)
	default:
		log.Printf("migrate: schema %s complete", *direction)
	}
}
