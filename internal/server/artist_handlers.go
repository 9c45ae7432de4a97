package server

import (
	"github.com/gofiber/fiber/v2"
)

// TopArtists godoc
// @Summary Top artists leaderboard
// @Description Artists ranked by total likes across their public artworks
// @Tags artists
// @Produce json
// @Param limit query int false "Number of artists to return" default(3)
// @Success 200 {array} models.TopArtist
// @Router /artists/top [get]
func (s *Server) TopArtists(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit := queryUint(c, "limit", 3)

	artists, err := s.artistService.TopArtists(ctx, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artists)
}

// ArtistInfo handles GET /api/artworks/artist/:email
func (s *Server) ArtistInfo(c *fiber.Ctx) error {
	ctx := c.UserContext()
	email := c.Params("email")

	info, err := s.artistService.Info(ctx, email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(info)
}
