package repository

import (
	"context"

	"mindcanva/internal/cache"
	"mindcanva/internal/middleware"
	"mindcanva/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	Record(ctx context.Context, artworkID uint, userEmail string) (inserted bool, err error)
	HasLiked(ctx context.Context, artworkID uint, userEmail string) (bool, error)
	CountForArtwork(ctx context.Context, artworkID uint) (int64, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Record inserts the like and bumps the artwork's counter in one
// transaction. The unique index on (artwork_id, user_email) makes the insert
// race-safe: two concurrent first-time likes resolve to exactly one row and
// one increment. A duplicate is reported as inserted=false, never an error.
func (r *likeRepository) Record(ctx context.Context, artworkID uint, userEmail string) (bool, error) {
	defer middleware.TrackQuery("record", "likes")()

	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := models.Like{ArtworkID: artworkID, UserEmail: userEmail}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "artwork_id"}, {Name: "user_email"}},
			DoNothing: true,
		}).Create(&like)
		if res.Error != nil {
			if IsUniqueViolation(res.Error) {
				return nil
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already liked; leave the counter alone.
			return nil
		}

		if err := tx.Model(&models.Artwork{}).
			Where("id = ?", artworkID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if inserted {
		cache.InvalidateArtwork(ctx, artworkID)
		cache.InvalidateLeaderboard(ctx)
	}
	return inserted, nil
}

func (r *likeRepository) HasLiked(ctx context.Context, artworkID uint, userEmail string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("artwork_id = ? AND user_email = ?", artworkID, userEmail).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountForArtwork counts the like rows for an artwork. The persisted counter
// on the artwork is the read path; this exists for reconciliation checks.
func (r *likeRepository) CountForArtwork(ctx context.Context, artworkID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("artwork_id = ?", artworkID).
		Count(&count).Error
	return count, err
}
