// Command main runs the database seeder for mindCanva.
package main

import (
	"flag"
	"log"

	"mindcanva/internal/config"
	"mindcanva/internal/database"
	"mindcanva/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numArtworks := flag.Int("artworks", 120, "Number of artworks to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d artworks, clean=%v\n", *numUsers, *numArtworks, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumArtworks: *numArtworks,
		ShouldClean: *shouldClean,
		DryRun:      *dryRun,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
