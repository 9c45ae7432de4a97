// Package service implements the application's business logic on top of the repositories.
package service

import (
	"context"
	"errors"

	"mindcanva/internal/middleware"
	"mindcanva/internal/models"
	"mindcanva/internal/observability"
	"mindcanva/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// LikeService records likes and maintains the denormalized like counter on
// artworks. There is no unlike: the counter only moves forward through this
// service.
type LikeService struct {
	likeRepo    repository.LikeRepository
	artworkRepo repository.ArtworkRepository
}

// LikeResult is the outcome of a like attempt. AlreadyLiked marks the
// idempotent replay case; it is a normal outcome, not an error.
type LikeResult struct {
	Recorded     bool `json:"success"`
	AlreadyLiked bool `json:"alreadyLiked,omitempty"`
	Likes        int  `json:"likes"`
}

// NewLikeService creates a new like service
func NewLikeService(likeRepo repository.LikeRepository, artworkRepo repository.ArtworkRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo, artworkRepo: artworkRepo}
}

// RecordLike likes the artwork on behalf of userEmail. Liking an artwork the
// user has already liked is a no-op that reports AlreadyLiked; liking a
// missing artwork is NotFound.
func (s *LikeService) RecordLike(ctx context.Context, artworkID uint, userEmail string) (*LikeResult, error) {
	ctx, span := observability.StartSpan(ctx, "LikeService.RecordLike",
		attribute.Int("artwork.id", int(artworkID)))
	var err error
	defer func() { observability.EndSpan(span, err) }()

	if userEmail == "" {
		err = models.NewValidationError("user_email is required")
		return nil, err
	}

	if _, lookupErr := s.artworkRepo.GetByID(ctx, artworkID); lookupErr != nil {
		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			middleware.LikeOutcomes.WithLabelValues("not_found").Inc()
			err = models.NewNotFoundError("Artwork", artworkID)
			return nil, err
		}
		err = models.NewInternalError(lookupErr)
		return nil, err
	}

	inserted, recErr := s.likeRepo.Record(ctx, artworkID, userEmail)
	if recErr != nil {
		middleware.LikeOutcomes.WithLabelValues("error").Inc()
		err = models.NewInternalError(recErr)
		return nil, err
	}

	result := &LikeResult{Recorded: inserted, AlreadyLiked: !inserted}
	if inserted {
		middleware.LikeOutcomes.WithLabelValues("recorded").Inc()
	} else {
		middleware.LikeOutcomes.WithLabelValues("duplicate").Inc()
	}

	// Re-read for the fresh counter; the like itself has already settled, so
	// a failure here degrades the response, not the write.
	if artwork, readErr := s.artworkRepo.GetByID(ctx, artworkID); readErr == nil {
		result.Likes = artwork.Likes
	}
	return result, nil
}

// HasLiked reports whether userEmail already liked the artwork. Pure lookup,
// no artwork-existence requirement.
func (s *LikeService) HasLiked(ctx context.Context, artworkID uint, userEmail string) (bool, error) {
	if userEmail == "" {
		return false, models.NewValidationError("user_email is required")
	}
	liked, err := s.likeRepo.HasLiked(ctx, artworkID, userEmail)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return liked, nil
}
