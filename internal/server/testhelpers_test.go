package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindcanva/internal/models"
	"mindcanva/internal/repository"
	"mindcanva/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a Server against a fresh in-memory database. Redis and
// the metrics middleware stay out of the picture; handlers only need the
// repositories and services.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Like{},
		&models.Favorite{},
	))

	userRepo := repository.NewUserRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	s := &Server{
		db:           db,
		userRepo:     userRepo,
		artworkRepo:  artworkRepo,
		likeRepo:     likeRepo,
		favoriteRepo: favoriteRepo,
	}
	s.likeService = service.NewLikeService(likeRepo, artworkRepo)
	s.favoriteService = service.NewFavoriteService(favoriteRepo)
	s.profileService = service.NewProfileService(userRepo, artworkRepo)
	s.artistService = service.NewArtistService(artworkRepo)
	s.artworkService = service.NewArtworkService(artworkRepo)

	return s, db
}

// newTestApp registers the API routes on a bare Fiber app, with none of the
// production middleware.
func newTestApp(s *Server) *fiber.App {
	app := fiber.New()
	api := app.Group("/api")

	api.Post("/users", s.CreateUser)
	api.Put("/users/profile", s.SyncProfile)

	api.Get("/artworks/latest", s.LatestArtworks)
	api.Get("/artworks/category/:category", s.ArtworksByCategory)
	api.Get("/artworks/artist/:email", s.ArtistInfo)
	api.Get("/artworks", s.ListArtworks)
	api.Post("/artworks", s.CreateArtwork)
	api.Get("/artworks/:id", s.GetArtwork)
	api.Put("/artworks/:id", s.UpdateArtwork)
	api.Delete("/artworks/:id", s.DeleteArtwork)
	api.Patch("/artworks/:id/like", s.LikeArtwork)

	api.Get("/my-artworks", s.MyArtworks)
	api.Get("/search", s.SearchArtworks)
	api.Get("/categories", s.Categories)

	api.Get("/likes/check", s.CheckLiked)

	api.Post("/favorites", s.AddFavorite)
	api.Get("/favorites/check", s.CheckFavorited)
	api.Get("/favorites", s.ListFavorites)
	api.Delete("/favorites/:id", s.RemoveFavorite)

	api.Get("/artists/top", s.TopArtists)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded []any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}
