// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mindcanva/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumArtworks int
	ShouldClean bool
	DryRun      bool
	MaxDays     int
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d artworks...", opts.NumUsers, opts.NumArtworks)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("no users created, aborting")
	}
	log.Printf("✓ %d test users created", len(users))

	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	artworks := make([]*models.Artwork, 0, opts.NumArtworks)
	for i := 0; i < opts.NumArtworks; i++ {
		user := users[r.Intn(len(users))]
		artwork, err := f.CreateArtwork(user)
		if err != nil {
			return fmt.Errorf("failed to create artwork: %w", err)
		}
		artworks = append(artworks, artwork)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d artworks...", i)
		}
	}
	log.Printf("✓ %d artworks created", len(artworks))

	// Likes are skewed so the top-artists leaderboard has a clear shape:
	// earlier artworks pick up more likes than later ones.
	likes := 0
	for idx, artwork := range artworks {
		weight := len(artworks) - idx
		n := r.Intn(weight%10+1) + r.Intn(3)
		for j := 0; j < n && j < len(users); j++ {
			if err := f.CreateLike(users[j], artwork); err != nil {
				log.Printf("Failed to create like: %v", err)
				continue
			}
			likes++
		}
	}
	log.Printf("✓ %d likes created", likes)

	favorites := 0
	for _, user := range users {
		n := r.Intn(6)
		for j := 0; j < n && len(artworks) > 0; j++ {
			artwork := artworks[r.Intn(len(artworks))]
			if err := f.CreateFavorite(user, artwork); err != nil {
				log.Printf("Failed to create favorite: %v", err)
				continue
			}
			favorites++
		}
	}
	log.Printf("✓ %d favorites created", favorites)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE favorites, likes, artworks, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
