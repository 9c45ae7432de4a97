package server

import (
	"mindcanva/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeArtwork handles PATCH /api/artworks/:id/like
// @Summary Like an artwork
// @Description Record a like; liking the same artwork twice is a no-op that reports the duplicate
// @Tags likes
// @Accept json
// @Produce json
// @Param id path int true "Artwork ID"
// @Param request body object{user_email=string} true "Liking user"
// @Success 200 {object} service.LikeResult
// @Failure 404 {object} models.ErrorResponse
// @Router /artworks/{id}/like [patch]
func (s *Server) LikeArtwork(c *fiber.Ctx) error {
	ctx := c.UserContext()
	artworkID, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		UserEmail string `json:"user_email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	c.Locals("userEmail", req.UserEmail)

	result, err := s.likeService.RecordLike(ctx, artworkID, req.UserEmail)
	if err != nil {
		return respondError(c, err)
	}

	if result.AlreadyLiked {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Already liked",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}

// CheckLiked handles GET /api/likes/check?artwork_id=&user_email=
func (s *Server) CheckLiked(c *fiber.Ctx) error {
	ctx := c.UserContext()
	artworkID := queryUint(c, "artwork_id", 0)
	userEmail := c.Query("user_email")
	c.Locals("userEmail", userEmail)

	hasLiked, err := s.likeService.HasLiked(ctx, uint(artworkID), userEmail)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"hasLiked": hasLiked})
}
