package repository

import (
	"context"
	"testing"

	"mindcanva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Add_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	fav := &models.Favorite{ArtworkID: artwork.ID, UserEmail: "bob@example.com"}
	inserted, err := repo.Add(ctx, fav)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same pair again.
	inserted, err = repo.Add(ctx, &models.Favorite{ArtworkID: artwork.ID, UserEmail: "bob@example.com"})
	require.NoError(t, err)
	assert.False(t, inserted)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFavoriteRepository_Add_PreservesExtraPayload(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	fav := &models.Favorite{
		ArtworkID: artwork.ID,
		UserEmail: "bob@example.com",
		Extra: map[string]any{
			"title":      "Dusk",
			"image_url":  "https://example.com/dusk.jpg",
			"collection": "evening",
		},
	}
	inserted, err := repo.Add(ctx, fav)
	require.NoError(t, err)
	require.True(t, inserted)

	favorites, err := repo.ListByUser(ctx, "bob@example.com")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Dusk", favorites[0].Extra["title"])
	assert.Equal(t, "evening", favorites[0].Extra["collection"])
}

func TestFavoriteRepository_ListByUser_OnlyOwnRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	for i, email := range []string{"bob@example.com", "bob@example.com", "carol@example.com"} {
		artwork := models.Artwork{Title: "Art", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
		require.NoError(t, db.Create(&artwork).Error)
		_, err := repo.Add(ctx, &models.Favorite{ArtworkID: artwork.ID, UserEmail: email})
		require.NoError(t, err, "row %d", i)
	}

	favorites, err := repo.ListByUser(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
	for _, f := range favorites {
		assert.Equal(t, "bob@example.com", f.UserEmail)
	}
}

func TestFavoriteRepository_Delete_ReportsRowCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	fav := &models.Favorite{ArtworkID: artwork.ID, UserEmail: "bob@example.com"}
	_, err := repo.Add(ctx, fav)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, fav.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Missing id is a no-op, reported as zero rows.
	deleted, err = repo.Delete(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestFavoriteRepository_IsFavorited(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	artwork := models.Artwork{Title: "Dusk", CreatedBy: "ana@example.com", Visibility: models.VisibilityPublic}
	require.NoError(t, db.Create(&artwork).Error)

	_, err := repo.Add(ctx, &models.Favorite{ArtworkID: artwork.ID, UserEmail: "bob@example.com"})
	require.NoError(t, err)

	got, err := repo.IsFavorited(ctx, artwork.ID, "bob@example.com")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = repo.IsFavorited(ctx, artwork.ID, "carol@example.com")
	require.NoError(t, err)
	assert.False(t, got)
}
