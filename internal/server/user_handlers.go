package server

import (
	"mindcanva/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	c.Locals("userEmail", req.Email)

	user := &models.User{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	}
	created, err := s.profileService.CreateUser(ctx, user)
	if err != nil {
		return respondError(c, err)
	}
	if !created {
		return c.JSON(fiber.Map{
			"message":    "user already exists",
			"insertedId": nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"result":  user,
	})
}

// SyncProfile handles PUT /api/users/profile
// @Summary Sync user profile
// @Description Upsert the user's display identity and propagate it onto every artwork they authored
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{email=string,displayName=string,photoURL=string} true "Profile fields"
// @Success 200 {object} object{success=bool,artworkCount=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /users/profile [put]
func (s *Server) SyncProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	c.Locals("userEmail", req.Email)

	result, err := s.profileService.SyncProfile(ctx, req.Email, req.DisplayName, req.PhotoURL)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": result.Success,
		"result": fiber.Map{
			"email":       req.Email,
			"displayName": req.DisplayName,
			"photoURL":    req.PhotoURL,
		},
		"artworkCount": result.ArtworkCount,
	})
}
