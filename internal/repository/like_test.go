package repository

import (
	"context"
	"testing"

	"mindcanva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_Record_FirstLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	inserted, err := repo.Record(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, inserted)

	var reloaded models.Artwork
	require.NoError(t, db.First(&reloaded, artwork.ID).Error)
	assert.Equal(t, 1, reloaded.Likes)

	liked, err := repo.HasLiked(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeRepository_Record_DuplicateLeavesCounterAlone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	inserted, err := repo.Record(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)
	require.True(t, inserted)

	// Same user likes again. Not an error, and the counter must not move.
	inserted, err = repo.Record(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, inserted)

	var reloaded models.Artwork
	require.NoError(t, db.First(&reloaded, artwork.ID).Error)
	assert.Equal(t, 1, reloaded.Likes)

	count, err := repo.CountForArtwork(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLikeRepository_Record_CounterMatchesRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Tide", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	users := []string{"a@example.com", "b@example.com", "c@example.com", "a@example.com", "b@example.com"}
	for _, email := range users {
		_, err := repo.Record(ctx, artwork.ID, email)
		require.NoError(t, err)
	}

	var reloaded models.Artwork
	require.NoError(t, db.First(&reloaded, artwork.ID).Error)

	rows, err := repo.CountForArtwork(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows)
	assert.Equal(t, 3, reloaded.Likes)
}

func TestLikeRepository_HasLiked_DifferentUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	_, err := repo.Record(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)

	liked, err := repo.HasLiked(ctx, artwork.ID, "carol@example.com")
	require.NoError(t, err)
	assert.False(t, liked)
}
