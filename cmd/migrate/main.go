package main

import (
	"log"

	"meeze/backend/internal/config"
	"meeze/backend/internal/db"
)

func main() {
	cfg := config.Load()
	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	log.Println("schema ready")
}
