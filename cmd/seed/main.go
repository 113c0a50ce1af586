// Command main runs the database seeder for Friender.
package main

import (
	"flag"
	"log"

	"friender/internal/config"
	"friender/internal/database"
	"friender/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, clean=%v\n", *numUsers, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{NumUsers: *numUsers, ShouldClean: *shouldClean}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete. Demo login password:", seed.DemoPassword)
}
