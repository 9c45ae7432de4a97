package service

import (
	"context"
	"errors"
	"testing"

	"mindcanva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeService_RecordLike_Success(t *testing.T) {
	t.Parallel()

	artworkRepo := noopArtworkRepo()
	artworkRepo.getByIDFn = func(_ context.Context, id uint) (*models.Artwork, error) {
		return &models.Artwork{ID: id, Likes: 6}, nil
	}
	likeRepo := noopLikeRepo()
	var gotEmail string
	likeRepo.recordFn = func(_ context.Context, _ uint, email string) (bool, error) {
		gotEmail = email
		return true, nil
	}

	svc := NewLikeService(likeRepo, artworkRepo)
	result, err := svc.RecordLike(context.Background(), 1, "bob@example.com")
	require.NoError(t, err)

	assert.True(t, result.Recorded)
	assert.False(t, result.AlreadyLiked)
	assert.Equal(t, 6, result.Likes)
	assert.Equal(t, "bob@example.com", gotEmail)
}

func TestLikeService_RecordLike_Duplicate(t *testing.T) {
	t.Parallel()

	likeRepo := noopLikeRepo()
	likeRepo.recordFn = func(_ context.Context, _ uint, _ string) (bool, error) {
		return false, nil
	}

	svc := NewLikeService(likeRepo, noopArtworkRepo())
	result, err := svc.RecordLike(context.Background(), 1, "bob@example.com")
	require.NoError(t, err)

	assert.False(t, result.Recorded)
	assert.True(t, result.AlreadyLiked)
}

func TestLikeService_RecordLike_MissingEmail(t *testing.T) {
	t.Parallel()

	svc := NewLikeService(noopLikeRepo(), noopArtworkRepo())
	_, err := svc.RecordLike(context.Background(), 1, "")
	assertValidationError(t, err)
}

func TestLikeService_RecordLike_ArtworkNotFound(t *testing.T) {
	t.Parallel()

	artworkRepo := noopArtworkRepo()
	artworkRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Artwork, error) {
		return nil, gorm.ErrRecordNotFound
	}
	likeRepo := noopLikeRepo()
	likeRepo.recordFn = func(_ context.Context, _ uint, _ string) (bool, error) {
		t.Fatal("Record must not be called for a missing artwork")
		return false, nil
	}

	svc := NewLikeService(likeRepo, artworkRepo)
	_, err := svc.RecordLike(context.Background(), 99, "bob@example.com")
	assertNotFoundError(t, err)
}

func TestLikeService_RecordLike_StoreFailure(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("connection reset")
	likeRepo := noopLikeRepo()
	likeRepo.recordFn = func(_ context.Context, _ uint, _ string) (bool, error) {
		return false, repoErr
	}

	svc := NewLikeService(likeRepo, noopArtworkRepo())
	_, err := svc.RecordLike(context.Background(), 1, "bob@example.com")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
	assert.ErrorIs(t, err, repoErr)
}

func TestLikeService_HasLiked(t *testing.T) {
	t.Parallel()

	likeRepo := noopLikeRepo()
	likeRepo.hasLikedFn = func(_ context.Context, id uint, email string) (bool, error) {
		return id == 1 && email == "bob@example.com", nil
	}

	svc := NewLikeService(likeRepo, noopArtworkRepo())

	liked, err := svc.HasLiked(context.Background(), 1, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.HasLiked(context.Background(), 2, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.HasLiked(context.Background(), 1, "")
	assertValidationError(t, err)
}
