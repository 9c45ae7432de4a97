package service

import (
	"context"

	"mindcanva/internal/models"
	"mindcanva/internal/repository"
)

const (
	defaultTopArtists = 3
	maxTopArtists     = 50
)

// ArtistService derives artist-level views from artwork engagement data.
type ArtistService struct {
	artworkRepo repository.ArtworkRepository
}

// ArtistInfo is the lightweight public profile derived from a creator's
// artworks.
type ArtistInfo struct {
	ArtistPhoto string `json:"artist_photo"`
	Total       int    `json:"total"`
}

// NewArtistService creates a new artist service
func NewArtistService(artworkRepo repository.ArtworkRepository) *ArtistService {
	return &ArtistService{artworkRepo: artworkRepo}
}

// TopArtists returns the engagement leaderboard. limit defaults to 3 and is
// capped; the ordering is total likes descending.
func (s *ArtistService) TopArtists(ctx context.Context, limit int) ([]models.TopArtist, error) {
	if limit <= 0 {
		limit = defaultTopArtists
	}
	if limit > maxTopArtists {
		limit = maxTopArtists
	}
	artists, err := s.artworkRepo.TopArtists(ctx, limit)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return artists, nil
}

// Info returns the artist's photo (as denormalized on their artworks) and
// how many artworks they have published.
func (s *ArtistService) Info(ctx context.Context, email string) (*ArtistInfo, error) {
	if email == "" {
		return nil, models.NewValidationError("email is required")
	}
	artworks, err := s.artworkRepo.ByCreator(ctx, email, "created_at", "desc")
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	info := &ArtistInfo{Total: len(artworks)}
	if len(artworks) > 0 {
		info.ArtistPhoto = artworks[0].ArtistPhoto
	}
	return info, nil
}
