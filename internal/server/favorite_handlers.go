package server

import (
	"mindcanva/internal/models"
	"mindcanva/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddFavorite handles POST /api/favorites
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// The body carries artwork_id and user_email plus whatever else the
	// client wants stored alongside the bookmark.
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	in := service.AddFavoriteInput{Extra: map[string]any{}}
	for k, v := range body {
		switch k {
		case "artwork_id":
			if f, ok := v.(float64); ok {
				in.ArtworkID = uint(f)
			}
		case "user_email":
			if s, ok := v.(string); ok {
				in.UserEmail = s
			}
		default:
			in.Extra[k] = v
		}
	}
	if len(in.Extra) == 0 {
		in.Extra = nil
	}
	c.Locals("userEmail", in.UserEmail)

	result, err := s.favoriteService.AddFavorite(ctx, in)
	if err != nil {
		return respondError(c, err)
	}

	if result.AlreadyExists {
		return c.JSON(fiber.Map{
			"success":       false,
			"message":       "Already in favorites",
			"alreadyExists": true,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"result":  result.Favorite,
	})
}

// ListFavorites handles GET /api/favorites?email=
func (s *Server) ListFavorites(c *fiber.Ctx) error {
	ctx := c.UserContext()
	email := c.Query("email")
	c.Locals("userEmail", email)

	list, err := s.favoriteService.ListFavorites(ctx, email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(list)
}

// CheckFavorited handles GET /api/favorites/check?artwork_id=&user_email=
func (s *Server) CheckFavorited(c *fiber.Ctx) error {
	ctx := c.UserContext()
	artworkID := queryUint(c, "artwork_id", 0)
	userEmail := c.Query("user_email")
	c.Locals("userEmail", userEmail)

	favorited, err := s.favoriteService.IsFavorited(ctx, uint(artworkID), userEmail)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"isFavorited": favorited})
}

// RemoveFavorite handles DELETE /api/favorites/:id
// Removing a favorite that does not exist is a successful no-op.
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	result, err := s.favoriteService.RemoveFavorite(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}
