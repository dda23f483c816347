package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pollbooth-dev/pollbooth/db"
	"github.com/pollbooth-dev/pollbooth/internal/auth"
	"github.com/pollbooth-dev/pollbooth/internal/config"
	"github.com/pollbooth-dev/pollbooth/internal/router"
	"github.com/pollbooth-dev/pollbooth/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.ParseFlags(os.Args[1:])

	if err != nil {
		log.Fatalf("Error parsing configuration: %v", err)
	}

	conn, err := db.ConnectDatabase(cfg)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(conn), auth.NewSessions(cfg.SessionSecret), cfg.AllowedOrigins)

	log.Printf("Listening on port %d", cfg.Port)

	if err := r.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
