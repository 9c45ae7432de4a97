package repository

import (
	"context"

	"mindcanva/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (inserted bool, err error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertProfile(ctx context.Context, email, displayName, photoURL string) error
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user unless the email is already registered. A duplicate
// email is reported as inserted=false, not an error, so replays and races
// both land on the same outcome.
func (r *userRepository) Create(ctx context.Context, user *models.User) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(user)
	if res.Error != nil {
		if IsUniqueViolation(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpsertProfile creates or updates the user keyed by email, setting the
// canonical identity fields. updated_at moves forward on both paths.
func (r *userRepository) UpsertProfile(ctx context.Context, email, displayName, photoURL string) error {
	user := models.User{
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    photoURL,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "photo_url", "updated_at"}),
		}).
		Create(&user).Error
}
