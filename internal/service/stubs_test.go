package service

import (
	"context"
	"errors"
	"testing"

	"mindcanva/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// artworkRepoStub is a stub for repository.ArtworkRepository.
type artworkRepoStub struct {
	createFn       func(context.Context, *models.Artwork) error
	getByIDFn      func(context.Context, uint) (*models.Artwork, error)
	updateFn       func(context.Context, *models.Artwork) error
	deleteFn       func(context.Context, uint) error
	listPublicFn   func(context.Context, int) ([]models.Artwork, error)
	latestFn       func(context.Context, int) ([]models.Artwork, error)
	categoriesFn   func(context.Context) ([]string, error)
	byCategoryFn   func(context.Context, string) ([]models.Artwork, error)
	byCreatorFn    func(context.Context, string, string, string) ([]models.Artwork, error)
	searchFn       func(context.Context, string, string) ([]models.Artwork, error)
	syncIdentityFn func(context.Context, string, string, string) (int64, error)
	countFn        func(context.Context, string) (int64, error)
	topArtistsFn   func(context.Context, int) ([]models.TopArtist, error)
}

func (s *artworkRepoStub) Create(ctx context.Context, a *models.Artwork) error {
	return s.createFn(ctx, a)
}
func (s *artworkRepoStub) GetByID(ctx context.Context, id uint) (*models.Artwork, error) {
	return s.getByIDFn(ctx, id)
}
func (s *artworkRepoStub) Update(ctx context.Context, a *models.Artwork) error {
	return s.updateFn(ctx, a)
}
func (s *artworkRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *artworkRepoStub) ListPublic(ctx context.Context, limit int) ([]models.Artwork, error) {
	return s.listPublicFn(ctx, limit)
}
func (s *artworkRepoStub) Latest(ctx context.Context, limit int) ([]models.Artwork, error) {
	return s.latestFn(ctx, limit)
}
func (s *artworkRepoStub) Categories(ctx context.Context) ([]string, error) {
	return s.categoriesFn(ctx)
}
func (s *artworkRepoStub) ByCategory(ctx context.Context, category string) ([]models.Artwork, error) {
	return s.byCategoryFn(ctx, category)
}
func (s *artworkRepoStub) ByCreator(ctx context.Context, email, sort, order string) ([]models.Artwork, error) {
	return s.byCreatorFn(ctx, email, sort, order)
}
func (s *artworkRepoStub) Search(ctx context.Context, text, category string) ([]models.Artwork, error) {
	return s.searchFn(ctx, text, category)
}
func (s *artworkRepoStub) SyncArtistIdentity(ctx context.Context, email, name, photo string) (int64, error) {
	return s.syncIdentityFn(ctx, email, name, photo)
}
func (s *artworkRepoStub) CountByCreator(ctx context.Context, email string) (int64, error) {
	return s.countFn(ctx, email)
}
func (s *artworkRepoStub) TopArtists(ctx context.Context, limit int) ([]models.TopArtist, error) {
	return s.topArtistsFn(ctx, limit)
}

func noopArtworkRepo() *artworkRepoStub {
	return &artworkRepoStub{
		createFn:       func(_ context.Context, _ *models.Artwork) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Artwork, error) { return &models.Artwork{}, nil },
		updateFn:       func(_ context.Context, _ *models.Artwork) error { return nil },
		deleteFn:       func(_ context.Context, _ uint) error { return nil },
		listPublicFn:   func(_ context.Context, _ int) ([]models.Artwork, error) { return nil, nil },
		latestFn:       func(_ context.Context, _ int) ([]models.Artwork, error) { return nil, nil },
		categoriesFn:   func(_ context.Context) ([]string, error) { return nil, nil },
		byCategoryFn:   func(_ context.Context, _ string) ([]models.Artwork, error) { return nil, nil },
		byCreatorFn:    func(_ context.Context, _, _, _ string) ([]models.Artwork, error) { return nil, nil },
		searchFn:       func(_ context.Context, _, _ string) ([]models.Artwork, error) { return nil, nil },
		syncIdentityFn: func(_ context.Context, _, _, _ string) (int64, error) { return 0, nil },
		countFn:        func(_ context.Context, _ string) (int64, error) { return 0, nil },
		topArtistsFn:   func(_ context.Context, _ int) ([]models.TopArtist, error) { return nil, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	recordFn   func(context.Context, uint, string) (bool, error)
	hasLikedFn func(context.Context, uint, string) (bool, error)
	countFn    func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Record(ctx context.Context, artworkID uint, email string) (bool, error) {
	return s.recordFn(ctx, artworkID, email)
}
func (s *likeRepoStub) HasLiked(ctx context.Context, artworkID uint, email string) (bool, error) {
	return s.hasLikedFn(ctx, artworkID, email)
}
func (s *likeRepoStub) CountForArtwork(ctx context.Context, artworkID uint) (int64, error) {
	return s.countFn(ctx, artworkID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		recordFn:   func(_ context.Context, _ uint, _ string) (bool, error) { return true, nil },
		hasLikedFn: func(_ context.Context, _ uint, _ string) (bool, error) { return false, nil },
		countFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// favoriteRepoStub is a stub for repository.FavoriteRepository.
type favoriteRepoStub struct {
	addFn         func(context.Context, *models.Favorite) (bool, error)
	listByUserFn  func(context.Context, string) ([]models.Favorite, error)
	isFavoritedFn func(context.Context, uint, string) (bool, error)
	deleteFn      func(context.Context, uint) (int64, error)
}

func (s *favoriteRepoStub) Add(ctx context.Context, f *models.Favorite) (bool, error) {
	return s.addFn(ctx, f)
}
func (s *favoriteRepoStub) ListByUser(ctx context.Context, email string) ([]models.Favorite, error) {
	return s.listByUserFn(ctx, email)
}
func (s *favoriteRepoStub) IsFavorited(ctx context.Context, artworkID uint, email string) (bool, error) {
	return s.isFavoritedFn(ctx, artworkID, email)
}
func (s *favoriteRepoStub) Delete(ctx context.Context, id uint) (int64, error) {
	return s.deleteFn(ctx, id)
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		addFn:         func(_ context.Context, _ *models.Favorite) (bool, error) { return true, nil },
		listByUserFn:  func(_ context.Context, _ string) ([]models.Favorite, error) { return nil, nil },
		isFavoritedFn: func(_ context.Context, _ uint, _ string) (bool, error) { return false, nil },
		deleteFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) (bool, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	upsertProfileFn func(context.Context, string, string, string) error
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) (bool, error) {
	return s.createFn(ctx, u)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) UpsertProfile(ctx context.Context, email, name, photo string) error {
	return s.upsertProfileFn(ctx, email, name, photo)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) (bool, error) { return true, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		upsertProfileFn: func(_ context.Context, _, _, _ string) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
