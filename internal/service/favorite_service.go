package service

import (
	"context"

	"mindcanva/internal/models"
	"mindcanva/internal/repository"
)

// FavoriteService records and removes a user's bookmarks of artworks.
// Favorites are fully independent of likes.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

// AddFavoriteInput is the payload for bookmarking an artwork. Extra carries
// any additional client fields, persisted verbatim.
type AddFavoriteInput struct {
	ArtworkID uint
	UserEmail string
	Extra     map[string]any
}

// AddFavoriteResult distinguishes the duplicate case from a real failure:
// AlreadyExists=true is success=false but still a normal outcome.
type AddFavoriteResult struct {
	Success       bool             `json:"success"`
	AlreadyExists bool             `json:"alreadyExists,omitempty"`
	Favorite      *models.Favorite `json:"result,omitempty"`
}

// FavoriteList is a user's favorites plus the count.
type FavoriteList struct {
	Favorites []models.Favorite `json:"favorites"`
	Total     int               `json:"total"`
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// AddFavorite bookmarks the artwork for the user. A repeated bookmark of the
// same pair reports AlreadyExists without inserting.
func (s *FavoriteService) AddFavorite(ctx context.Context, in AddFavoriteInput) (*AddFavoriteResult, error) {
	if in.UserEmail == "" {
		return nil, models.NewValidationError("user_email is required")
	}
	if in.ArtworkID == 0 {
		return nil, models.NewValidationError("artwork_id is required")
	}

	favorite := &models.Favorite{
		ArtworkID: in.ArtworkID,
		UserEmail: in.UserEmail,
		Extra:     in.Extra,
	}
	inserted, err := s.favoriteRepo.Add(ctx, favorite)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !inserted {
		return &AddFavoriteResult{Success: false, AlreadyExists: true}, nil
	}
	return &AddFavoriteResult{Success: true, Favorite: favorite}, nil
}

// ListFavorites returns all of the user's favorites with a total. Joining
// against artwork data is the consumer's concern.
func (s *FavoriteService) ListFavorites(ctx context.Context, userEmail string) (*FavoriteList, error) {
	if userEmail == "" {
		return nil, models.NewValidationError("email is required")
	}
	favorites, err := s.favoriteRepo.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if favorites == nil {
		favorites = []models.Favorite{}
	}
	return &FavoriteList{Favorites: favorites, Total: len(favorites)}, nil
}

// IsFavorited reports whether the user bookmarked the artwork.
func (s *FavoriteService) IsFavorited(ctx context.Context, artworkID uint, userEmail string) (bool, error) {
	if userEmail == "" {
		return false, models.NewValidationError("user_email is required")
	}
	favorited, err := s.favoriteRepo.IsFavorited(ctx, artworkID, userEmail)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return favorited, nil
}

// RemoveFavoriteResult reports the delete outcome. DeletedCount is zero when
// the id never existed.
type RemoveFavoriteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// RemoveFavorite deletes the favorite by id. Removing an id that never
// existed succeeds with a zero count; delete is idempotent here, unlike the
// like path's NotFound on a missing artwork.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, id uint) (*RemoveFavoriteResult, error) {
	deleted, err := s.favoriteRepo.Delete(ctx, id)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &RemoveFavoriteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
