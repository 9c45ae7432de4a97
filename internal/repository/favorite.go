package repository

import (
	"context"

	"mindcanva/internal/middleware"
	"mindcanva/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	Add(ctx context.Context, favorite *models.Favorite) (inserted bool, err error)
	ListByUser(ctx context.Context, userEmail string) ([]models.Favorite, error)
	IsFavorited(ctx context.Context, artworkID uint, userEmail string) (bool, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// favoriteRepository implements FavoriteRepository
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts the favorite unless the (artwork, user) pair already exists.
// The duplicate case is inserted=false, not an error.
func (r *favoriteRepository) Add(ctx context.Context, favorite *models.Favorite) (bool, error) {
	defer middleware.TrackQuery("add", "favorites")()

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "artwork_id"}, {Name: "user_email"}},
			DoNothing: true,
		}).
		Create(favorite)
	if res.Error != nil {
		if IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userEmail string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) IsFavorited(ctx context.Context, artworkID uint, userEmail string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("artwork_id = ? AND user_email = ?", artworkID, userEmail).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the favorite by id and reports how many rows went away.
// Deleting an id that does not exist is a no-op, not an error.
func (r *favoriteRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Favorite{}, id)
	return res.RowsAffected, res.Error
}
