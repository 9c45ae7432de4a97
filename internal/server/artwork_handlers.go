package server

import (
	"mindcanva/internal/models"
	"mindcanva/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateArtwork handles POST /api/artworks
func (s *Server) CreateArtwork(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Category    string `json:"category"`
		Visibility  string `json:"visibility"`
		CreatedBy   string `json:"created_by"`
		ArtistName  string `json:"artist_name"`
		ArtistPhoto string `json:"artist_photo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	c.Locals("userEmail", req.CreatedBy)

	artwork, err := s.artworkService.CreateArtwork(ctx, service.CreateArtworkInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Visibility:  req.Visibility,
		CreatedBy:   req.CreatedBy,
		ArtistName:  req.ArtistName,
		ArtistPhoto: req.ArtistPhoto,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"result":  artwork,
	})
}

// GetArtwork handles GET /api/artworks/:id
func (s *Server) GetArtwork(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	artwork, err := s.artworkService.GetArtwork(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artwork)
}

// UpdateArtwork handles PUT /api/artworks/:id
func (s *Server) UpdateArtwork(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Category    string `json:"category"`
		Visibility  string `json:"visibility"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	artwork, err := s.artworkService.UpdateArtwork(ctx, service.UpdateArtworkInput{
		ArtworkID:   id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Visibility:  req.Visibility,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  artwork,
	})
}

// DeleteArtwork handles DELETE /api/artworks/:id
func (s *Server) DeleteArtwork(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, ok := s.parseID(c, "id")
	if !ok {
		return nil
	}

	if err := s.artworkService.DeleteArtwork(ctx, id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListArtworks handles GET /api/artworks?limit=
func (s *Server) ListArtworks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	limit := queryUint(c, "limit", 100)

	artworks, err := s.artworkService.ListPublic(ctx, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

// LatestArtworks handles GET /api/artworks/latest
func (s *Server) LatestArtworks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	artworks, err := s.artworkService.Latest(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

// Categories handles GET /api/categories
func (s *Server) Categories(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := s.artworkService.Categories(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(categories)
}

// ArtworksByCategory handles GET /api/artworks/category/:category
func (s *Server) ArtworksByCategory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	category := c.Params("category")

	artworks, err := s.artworkService.ByCategory(ctx, category)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

// MyArtworks handles GET /api/my-artworks?email=&sort=&order=
func (s *Server) MyArtworks(c *fiber.Ctx) error {
	ctx := c.UserContext()
	email := c.Query("email")
	sort := c.Query("sort", "created_at")
	order := c.Query("order", "desc")
	c.Locals("userEmail", email)

	artworks, err := s.artworkService.MyArtworks(ctx, email, sort, order)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}

// SearchArtworks handles GET /api/search?search=&category=
func (s *Server) SearchArtworks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	artworks, err := s.artworkService.Search(ctx, c.Query("search"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(artworks)
}
