package server

import (
	"friender/internal/cache"
	"friender/internal/models"
	"friender/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	limit := c.QueryInt("limit", 100)
	offset := c.QueryInt("offset", 0)

	users, err := s.userService.ListUsers(ctx, limit, offset)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), currentUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PATCH /api/users/:username. Only the profile owner or
// an admin may update; absent fields keep their previous value.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	target := c.Params("username")
	if !s.requireAdminOrSelf(c, target) {
		return nil
	}

	var req struct {
		Email        *string `json:"email"`
		Location     *int    `json:"location"`
		Bio          *string `json:"bio"`
		FriendRadius *int    `json:"friend_radius"`
		Photo        *string `json:"photo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), target, service.UpdateProfileInput{
		Email:        req.Email,
		Location:     req.Location,
		Bio:          req.Bio,
		FriendRadius: req.FriendRadius,
		Photo:        req.Photo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:username. Dependent messages and
// friendships cascade with the row.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	target := c.Params("username")
	if !s.requireAdminOrSelf(c, target) {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), target); err != nil {
		return respondError(c, err)
	}

	// The user's cached friend set is stale now; their former friends'
	// sets expire by TTL.
	cache.Invalidate(c.Context(), cache.FriendsKey(target))

	return c.SendStatus(fiber.StatusNoContent)
}
