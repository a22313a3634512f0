package main

import (
	"context"
	"log"

	"lostfound/internal/config"
	"lostfound/internal/database"
	"lostfound/internal/domain/report"
)

// Seeds the board with a handful of demo reports for local development.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := report.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM items")

	// Rows go in directly; seeding has no files to push through the sink.
	repo := report.NewRepository(db)

	demo := []report.Report{
		{Name: "Aigerim", Course: "CSE-201", Contact: "87001112233", Category: "Wallet", Description: "Black leather wallet left in the library reading hall", Status: "Lost", Date: "8/29/2026"},
		{Name: "Daniyar", Course: "EEE-105", Contact: "87014445566", Category: "Electronics", Description: "Found a calculator near the second-floor lab", Status: "Found", Date: "8/30/2026"},
		{Name: "Madina", Course: "BBA-310", Contact: "87778889900", Category: "ID Card", Description: "Student ID card found at the cafeteria entrance", Status: "Found", Date: "8/31/2026"},
		{Name: "Olzhas", Course: "CSE-104", Contact: "87051234567", Category: "Keys", Description: "Lost a keychain with three keys and a blue tag", Status: "Lost", Date: "8/31/2026"},
	}

	ctx := context.Background()
	for i := range demo {
		if err := repo.Create(ctx, &demo[i]); err != nil {
			log.Fatal("seed insert failed:", err)
		}
	}

	log.Printf("Seeded %d reports into %s", len(demo), cfg.DatabaseURL)
}
