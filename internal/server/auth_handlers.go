package server

import (
	"fmt"
	"time"

	"friender/internal/models"
	"friender/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Signup handles POST /api/auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username     string  `json:"username"`
		Email        string  `json:"email"`
		Password     string  `json:"password"`
		Location     int     `json:"location"`
		Bio          string  `json:"bio"`
		FriendRadius int     `json:"friend_radius"`
		Photo        *string `json:"photo"`
		IsAdmin      bool    `json:"is_admin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, and password are required"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		Location:     req.Location,
		Bio:          req.Bio,
		FriendRadius: req.FriendRadius,
		Photo:        req.Photo,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// generateToken creates a JWT token for the given username
func (s *Server) generateToken(username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,                           // Subject (username is the primary key)
		"iss": tokenIssuer,                        // Issuer
		"aud": tokenAudience,                      // Audience
		"exp": now.Add(time.Hour * 24 * 7).Unix(), // Expiration (7 days)
		"iat": now.Unix(),                         // Issued at
		"nbf": now.Unix(),                         // Not before
		"jti": s.generateJTI(),                    // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
