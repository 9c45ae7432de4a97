// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"mindcanva/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var artCategories = []string{
	"Painting", "Drawing", "Digital Art", "Photography",
	"Sculpture", "Mixed Media", "Printmaking", "Illustration",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Email:       gofakeit.Email(),
		DisplayName: name,
		PhotoURL:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.DisplayName, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateArtwork constructs and persists a sample `models.Artwork` credited
// to the given user. The artist identity fields are copied from the user,
// matching what the API does at publish time.
func (f *Factory) CreateArtwork(user *models.User, overrides ...func(*models.Artwork)) (*models.Artwork, error) {
	//nolint:gosec // weak randomness is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	artwork := &models.Artwork{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Category:    artCategories[r.Intn(len(artCategories))],
		Visibility:  models.VisibilityPublic,
		CreatedBy:   user.Email,
		ArtistName:  user.DisplayName,
		ArtistPhoto: user.PhotoURL,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	artwork.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(artwork)
	}

	if f.opts.DryRun {
		f.nextID++
		artwork.ID = f.nextID
		log.Printf("[dry-run] CreateArtwork: %q by %s", artwork.Title, artwork.CreatedBy)
		return artwork, nil
	}

	if err := f.db.Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// CreateLike persists a like from `user` on `artwork` and bumps the
// artwork's denormalized counter, so seeded data keeps the counter and
// the like rows in agreement. Duplicate likes are silently skipped.
func (f *Factory) CreateLike(user *models.User, artwork *models.Artwork) error {
	if f.opts.DryRun {
		return nil
	}
	like := &models.Like{
		ArtworkID: artwork.ID,
		UserEmail: user.Email,
	}
	res := f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}
	return f.db.Model(&models.Artwork{}).
		Where("id = ?", artwork.ID).
		UpdateColumn("likes", gorm.Expr("likes + 1")).Error
}

// CreateFavorite persists a favorite from `user` on `artwork`. Duplicate
// favorites are silently skipped.
func (f *Factory) CreateFavorite(user *models.User, artwork *models.Artwork) error {
	if f.opts.DryRun {
		return nil
	}
	fav := &models.Favorite{
		ArtworkID: artwork.ID,
		UserEmail: user.Email,
		Extra: map[string]any{
			"title":     artwork.Title,
			"image_url": artwork.ImageURL,
		},
	}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
}
