package service

import (
	"context"
	"strings"

	"mindcanva/internal/middleware"
	"mindcanva/internal/models"
	"mindcanva/internal/observability"
	"mindcanva/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// ProfileService owns the canonical user profile and the propagation of its
// identity fields onto the user's artworks.
type ProfileService struct {
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
}

// SyncProfileResult reports the completed sync and how many artworks the
// caller owns after it.
type SyncProfileResult struct {
	Success      bool  `json:"success"`
	ArtworkCount int64 `json:"artworkCount"`
}

// NewProfileService creates a new profile service
func NewProfileService(userRepo repository.UserRepository, artworkRepo repository.ArtworkRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, artworkRepo: artworkRepo}
}

// SyncProfile upserts the user keyed by email and fans the new identity out
// to every artwork they authored.
//
// The upsert and the fan-out are deliberately not one transaction: a crash
// between them, or an artwork created mid-sync with stale identity, leaves
// artworks that disagree with the profile until the next sync. That window
// is the accepted consistency model; partial completion is never rolled
// back.
func (s *ProfileService) SyncProfile(ctx context.Context, email, displayName, photoURL string) (*SyncProfileResult, error) {
	ctx, span := observability.StartSpan(ctx, "ProfileService.SyncProfile")
	var err error
	defer func() { observability.EndSpan(span, err) }()

	if !strings.Contains(email, "@") {
		err = models.NewValidationError("Invalid email format")
		return nil, err
	}

	if upsertErr := s.userRepo.UpsertProfile(ctx, email, displayName, photoURL); upsertErr != nil {
		err = models.NewInternalError(upsertErr)
		return nil, err
	}

	updated, syncErr := s.artworkRepo.SyncArtistIdentity(ctx, email, displayName, photoURL)
	if syncErr != nil {
		// Profile row is already written; surfacing the failure without
		// rollback matches the eventual-consistency stance.
		err = models.NewInternalError(syncErr)
		return nil, err
	}
	middleware.ProfileSyncFanout.Observe(float64(updated))
	span.SetAttributes(attribute.Int64("profile.fanout", updated))

	count, countErr := s.artworkRepo.CountByCreator(ctx, email)
	if countErr != nil {
		err = models.NewInternalError(countErr)
		return nil, err
	}

	return &SyncProfileResult{Success: true, ArtworkCount: count}, nil
}

// CreateUser registers a user by email. An existing email is reported as
// created=false, which callers treat as "user already exists", not a failure.
func (s *ProfileService) CreateUser(ctx context.Context, user *models.User) (bool, error) {
	if !strings.Contains(user.Email, "@") {
		return false, models.NewValidationError("Invalid email format")
	}
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return created, nil
}
