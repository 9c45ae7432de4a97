package service

import (
	"context"
	"errors"
	"strings"

	"mindcanva/internal/models"
	"mindcanva/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultCatalogLimit = 100
	latestLimit         = 6
	maxTitleLen         = 300
)

// ArtworkService handles catalog CRUD and listing around artworks.
type ArtworkService struct {
	artworkRepo repository.ArtworkRepository
}

// CreateArtworkInput is the payload for publishing an artwork. ArtistName
// and ArtistPhoto are the creator's identity as known to the client at
// publish time; they stay as-is until the next profile sync.
type CreateArtworkInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    string
	Visibility  string
	CreatedBy   string
	ArtistName  string
	ArtistPhoto string
}

// UpdateArtworkInput carries the mutable artwork fields; empty fields are
// left unchanged.
type UpdateArtworkInput struct {
	ArtworkID   uint
	Title       string
	Description string
	ImageURL    string
	Category    string
	Visibility  string
}

// NewArtworkService creates a new artwork service
func NewArtworkService(artworkRepo repository.ArtworkRepository) *ArtworkService {
	return &ArtworkService{artworkRepo: artworkRepo}
}

func (s *ArtworkService) CreateArtwork(ctx context.Context, in CreateArtworkInput) (*models.Artwork, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if !strings.Contains(in.CreatedBy, "@") {
		return nil, models.NewValidationError("created_by must be the creator's email")
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	artwork := &models.Artwork{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Visibility:  visibility,
		CreatedBy:   in.CreatedBy,
		ArtistName:  in.ArtistName,
		ArtistPhoto: in.ArtistPhoto,
	}
	if err := s.artworkRepo.Create(ctx, artwork); err != nil {
		return nil, models.NewInternalError(err)
	}
	return artwork, nil
}

func (s *ArtworkService) GetArtwork(ctx context.Context, id uint) (*models.Artwork, error) {
	artwork, err := s.artworkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Artwork", id)
		}
		return nil, models.NewInternalError(err)
	}
	return artwork, nil
}

func (s *ArtworkService) UpdateArtwork(ctx context.Context, in UpdateArtworkInput) (*models.Artwork, error) {
	artwork, err := s.GetArtwork(ctx, in.ArtworkID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		artwork.Title = in.Title
	}
	if in.Description != "" {
		artwork.Description = in.Description
	}
	if in.ImageURL != "" {
		artwork.ImageURL = in.ImageURL
	}
	if in.Category != "" {
		artwork.Category = in.Category
	}
	if in.Visibility != "" {
		artwork.Visibility = in.Visibility
	}

	if err := s.artworkRepo.Update(ctx, artwork); err != nil {
		return nil, models.NewInternalError(err)
	}
	return artwork, nil
}

func (s *ArtworkService) DeleteArtwork(ctx context.Context, id uint) error {
	if _, err := s.GetArtwork(ctx, id); err != nil {
		return err
	}
	if err := s.artworkRepo.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListPublic returns up to limit public artworks; limit defaults to 100.
func (s *ArtworkService) ListPublic(ctx context.Context, limit int) ([]models.Artwork, error) {
	if limit <= 0 {
		limit = defaultCatalogLimit
	}
	artworks, err := s.artworkRepo.ListPublic(ctx, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// Latest returns the six newest public artworks.
func (s *ArtworkService) Latest(ctx context.Context) ([]models.Artwork, error) {
	artworks, err := s.artworkRepo.Latest(ctx, latestLimit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// Categories returns the distinct non-empty categories across public artworks.
func (s *ArtworkService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.artworkRepo.Categories(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *ArtworkService) ByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	if category == "" {
		return nil, models.NewValidationError("category is required")
	}
	artworks, err := s.artworkRepo.ByCategory(ctx, category)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// MyArtworks lists a creator's artworks ordered by one of the allowlisted
// sort fields. order is "asc" or "desc"; anything else means desc.
func (s *ArtworkService) MyArtworks(ctx context.Context, email, sort, order string) ([]models.Artwork, error) {
	if email == "" {
		return nil, models.NewValidationError("email is required")
	}
	artworks, err := s.artworkRepo.ByCreator(ctx, email, sort, order)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}

// Search finds public artworks whose title or artist name contains text,
// optionally restricted to a category. Both filters empty means the full
// public catalog.
func (s *ArtworkService) Search(ctx context.Context, text, category string) ([]models.Artwork, error) {
	artworks, err := s.artworkRepo.Search(ctx, text, category)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artworks, nil
}
