package server

import (
	"time"

	"friender/internal/cache"
	"friender/internal/middleware"
	"friender/internal/models"

	"github.com/gofiber/fiber/v2"
)

const friendsCacheTTL = 5 * time.Minute

// SendFriendRequest handles POST /api/friends/requests/:username
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	friendship, err := s.friendService.SendRequest(c.Context(), currentUsername(c), c.Params("username"))
	if err != nil {
		middleware.FriendRequestsTotal.WithLabelValues("rejected_create").Inc()
		return respondError(c, err)
	}

	middleware.FriendRequestsTotal.WithLabelValues("created").Inc()
	return c.Status(fiber.StatusCreated).JSON(friendship)
}

// GetPendingRequests handles GET /api/friends/requests
func (s *Server) GetPendingRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetPendingRequests(c.Context(), currentUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// GetSentRequests handles GET /api/friends/requests/sent
func (s *Server) GetSentRequests(c *fiber.Ctx) error {
	requests, err := s.friendService.GetSentRequests(c.Context(), currentUsername(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

// AcceptFriendRequest handles POST /api/friends/requests/:requestId/accept
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	return s.decideFriendRequest(c, models.FriendshipStatusAccepted)
}

// RejectFriendRequest handles POST /api/friends/requests/:requestId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	return s.decideFriendRequest(c, models.FriendshipStatusRejected)
}

// decideFriendRequest transitions a pending request to the given terminal
// status on behalf of the authenticated recipient.
func (s *Server) decideFriendRequest(c *fiber.Ctx, status models.FriendshipStatus) error {
	requestID, err := c.ParamsInt("requestId")
	if err != nil || requestID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request ID"))
	}

	friendship, err := s.friendService.ChangeStatus(c.Context(), currentUsername(c), uint(requestID), status)
	if err != nil {
		return respondError(c, err)
	}

	middleware.FriendRequestsTotal.WithLabelValues(string(status)).Inc()

	// Both endpoints' derived friend sets changed.
	cache.Invalidate(c.Context(),
		cache.FriendsKey(friendship.Sender),
		cache.FriendsKey(friendship.Recipient))

	return c.JSON(friendship)
}

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	ctx := c.Context()
	username := currentUsername(c)

	var friends []models.User
	err := cache.CacheAside(ctx, cache.FriendsKey(username), &friends, friendsCacheTTL, func() error {
		var ferr error
		friends, ferr = s.friendService.GetFriends(ctx, username)
		return ferr
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(friends)
}

// RemoveFriend handles DELETE /api/friends/:username
func (s *Server) RemoveFriend(c *fiber.Ctx) error {
	username := currentUsername(c)
	other := c.Params("username")

	if err := s.friendService.RemoveFriend(c.Context(), username, other); err != nil {
		return respondError(c, err)
	}

	cache.Invalidate(c.Context(), cache.FriendsKey(username), cache.FriendsKey(other))

	return c.SendStatus(fiber.StatusOK)
}
