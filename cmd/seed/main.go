package main

import (
	"flag"
	"log"

	"github.com/gamepulse/api/internal/config"
	"github.com/gamepulse/api/internal/database"
	"github.com/gamepulse/api/internal/seed"
	"github.com/gamepulse/api/internal/store"
)

func main() {
	count := flag.Int("count", seed.DefaultCount, "number of player/survey/session chains to generate")
	clear := flag.Bool("clear", false, "wipe existing rows before seeding")
	flag.Parse()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	st := store.New(db)

	if *clear {
		if err := st.ClearAll(); err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
		log.Println("Existing rows cleared")
	}

	created, err := seed.Run(st, *count)
	if err != nil {
		log.Fatalf("Seeding failed after %d chains: %v", created, err)
	}

	log.Printf("Seeded %d player/survey/session chains", created)
}
