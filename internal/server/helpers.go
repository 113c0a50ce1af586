package server

import (
	"context"

	"friender/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUsername returns the authenticated username set by AuthRequired.
func currentUsername(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}

// respondError translates a store error into the matching HTTP response.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.HTTPStatus(err), err)
}

// isAdminByUsername checks whether the given user has admin privileges.
func (s *Server) isAdminByUsername(ctx context.Context, username string) (bool, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("is_admin").First(&user, "username = ?", username).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// requireAdminOrSelf enforces the admin-or-self policy for operations on
// the target user. It writes the response on denial and returns false.
func (s *Server) requireAdminOrSelf(c *fiber.Ctx, target string) bool {
	actor := currentUsername(c)
	if actor == target {
		return true
	}
	admin, err := s.isAdminByUsername(c.Context(), actor)
	if err != nil || !admin {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Admin or profile owner access required"))
		return false
	}
	return true
}
