package server

import (
	"friender/internal/middleware"
	"friender/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendMessage handles POST /api/messages
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req struct {
		ToUser string `json:"to_user"`
		Text   string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ToUser == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Recipient is required"))
	}

	msg, err := s.messageService.Send(c.Context(), currentUsername(c), req.ToUser, req.Text)
	if err != nil {
		return respondError(c, err)
	}

	middleware.MessagesSentTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetMyMessages handles GET /api/messages
func (s *Server) GetMyMessages(c *fiber.Ctx) error {
	messages, err := s.messageService.History(c.Context(), currentUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}

// GetUserMessages handles GET /api/users/:username/messages.
// Message history is private: admin-or-self only.
func (s *Server) GetUserMessages(c *fiber.Ctx) error {
	target := c.Params("username")
	if !s.requireAdminOrSelf(c, target) {
		return nil
	}

	messages, err := s.messageService.History(c.Context(), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(messages)
}
