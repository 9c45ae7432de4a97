package repository

import (
	"context"

	"mindcanva/internal/cache"
	"mindcanva/internal/middleware"
	"mindcanva/internal/models"

	"gorm.io/gorm"
)

// ArtworkRepository defines the interface for artwork data operations
type ArtworkRepository interface {
	Create(ctx context.Context, artwork *models.Artwork) error
	GetByID(ctx context.Context, id uint) (*models.Artwork, error)
	Update(ctx context.Context, artwork *models.Artwork) error
	Delete(ctx context.Context, id uint) error
	ListPublic(ctx context.Context, limit int) ([]models.Artwork, error)
	Latest(ctx context.Context, limit int) ([]models.Artwork, error)
	Categories(ctx context.Context) ([]string, error)
	ByCategory(ctx context.Context, category string) ([]models.Artwork, error)
	ByCreator(ctx context.Context, email, sort, order string) ([]models.Artwork, error)
	Search(ctx context.Context, text, category string) ([]models.Artwork, error)
	SyncArtistIdentity(ctx context.Context, email, displayName, photoURL string) (int64, error)
	CountByCreator(ctx context.Context, email string) (int64, error)
	TopArtists(ctx context.Context, limit int) ([]models.TopArtist, error)
}

// artworkRepository implements ArtworkRepository
type artworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new artwork repository
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

func (r *artworkRepository) Create(ctx context.Context, artwork *models.Artwork) error {
	err := r.db.WithContext(ctx).Create(artwork).Error
	if err == nil {
		cache.InvalidateCategories(ctx)
	}
	return err
}

func (r *artworkRepository) GetByID(ctx context.Context, id uint) (*models.Artwork, error) {
	var artwork models.Artwork
	err := cache.Aside(ctx, cache.ArtworkKey(id), &artwork, cache.ArtworkTTL, func() error {
		return r.db.WithContext(ctx).First(&artwork, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepository) Update(ctx context.Context, artwork *models.Artwork) error {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return err
	}
	cache.InvalidateArtwork(ctx, artwork.ID)
	cache.InvalidateCategories(ctx)
	return nil
}

func (r *artworkRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Artwork{}, id).Error; err != nil {
		return err
	}
	cache.InvalidateArtwork(ctx, id)
	cache.InvalidateCategories(ctx)
	cache.InvalidateLeaderboard(ctx)
	return nil
}

func (r *artworkRepository) ListPublic(ctx context.Context, limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.WithContext(ctx).
		Where("visibility = ?", models.VisibilityPublic).
		Limit(limit).
		Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) Latest(ctx context.Context, limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.WithContext(ctx).
		Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC").
		Limit(limit).
		Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Artwork{}).
			Where("visibility = ? AND category <> ''", models.VisibilityPublic).
			Distinct().
			Order("category").
			Pluck("category", &categories).Error
	})
	return categories, err
}

func (r *artworkRepository) ByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.WithContext(ctx).
		Where("category = ? AND visibility = ?", category, models.VisibilityPublic).
		Find(&artworks).Error
	return artworks, err
}

// applyCreatorSort appends the ORDER BY clause for the requested sort field.
// Only the enumerated fields are sortable; anything unrecognized falls back
// to created_at so callers cannot order by arbitrary columns.
func applyCreatorSort(db *gorm.DB, sort, order string) *gorm.DB {
	dir := "DESC"
	if order == "asc" {
		dir = "ASC"
	}
	switch sort {
	case "likes":
		return db.Order("likes " + dir)
	case "title":
		return db.Order("title " + dir)
	case "category":
		return db.Order("category " + dir)
	default: // "created_at" and anything unrecognized
		return db.Order("created_at " + dir)
	}
}

func (r *artworkRepository) ByCreator(ctx context.Context, email, sort, order string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	base := r.db.WithContext(ctx).Where("created_by = ?", email)
	err := applyCreatorSort(base, sort, order).Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) Search(ctx context.Context, text, category string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	q := r.db.WithContext(ctx).Where("visibility = ?", models.VisibilityPublic)
	if text != "" {
		like := "%" + text + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(artist_name) LIKE LOWER(?)", like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Order("created_at DESC").Find(&artworks).Error
	return artworks, err
}

// SyncArtistIdentity fans the user's canonical identity out to every artwork
// they authored and returns how many rows were touched. Cached copies of
// those artworks and the leaderboard are dropped afterwards.
func (r *artworkRepository) SyncArtistIdentity(ctx context.Context, email, displayName, photoURL string) (int64, error) {
	defer middleware.TrackQuery("sync_identity", "artworks")()

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("created_by = ?", email).
		Pluck("id", &ids).Error; err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("created_by = ?", email).
		UpdateColumns(map[string]any{
			"artist_name":  displayName,
			"artist_photo": photoURL,
		})
	if res.Error != nil {
		return 0, res.Error
	}

	for _, id := range ids {
		cache.InvalidateArtwork(ctx, id)
	}
	cache.InvalidateLeaderboard(ctx)
	return res.RowsAffected, nil
}

func (r *artworkRepository) CountByCreator(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("created_by = ?", email).
		Count(&count).Error
	return count, err
}

// TopArtists groups public artworks by creator and ranks the groups by summed
// likes. Identity fields come from the creator's most recent public artwork
// rather than an arbitrary scan-order pick, so a stale denormalized value on
// an old artwork cannot win. Ties break on artist_email for a stable order.
func (r *artworkRepository) TopArtists(ctx context.Context, limit int) ([]models.TopArtist, error) {
	defer middleware.TrackQuery("top_artists", "artworks")()

	var rows []models.TopArtist
	err := cache.Aside(ctx, cache.TopArtistsKey(limit), &rows, cache.TopArtistsTTL, func() error {
		return r.db.WithContext(ctx).Raw(`
			SELECT
				a.created_by AS artist_email,
				(SELECT b.artist_name FROM artworks b
				 WHERE b.created_by = a.created_by AND b.visibility = ? AND b.deleted_at IS NULL
				 ORDER BY b.created_at DESC, b.id DESC LIMIT 1) AS artist_name,
				(SELECT b.artist_photo FROM artworks b
				 WHERE b.created_by = a.created_by AND b.visibility = ? AND b.deleted_at IS NULL
				 ORDER BY b.created_at DESC, b.id DESC LIMIT 1) AS artist_photo,
				SUM(a.likes) AS total_likes,
				COUNT(*) AS total_artworks
			FROM artworks a
			WHERE a.visibility = ? AND a.deleted_at IS NULL
			GROUP BY a.created_by
			ORDER BY total_likes DESC, artist_email ASC
			LIMIT ?`,
			models.VisibilityPublic, models.VisibilityPublic, models.VisibilityPublic, limit,
		).Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.TopArtist{}
	}
	return rows, nil
}
