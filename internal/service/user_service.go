// Package service contains the business rules layered over the repositories.
package service

import (
	"context"

	"friender/internal/models"
	"friender/internal/repository"
	"friender/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// errInvalidCredentials is the single failure returned for both a missing
// user and a wrong password, so the two cases stay indistinguishable.
var errInvalidCredentials = models.NewUnauthorizedError("Invalid credentials")

// UserService provides registration, authentication, and profile logic.
type UserService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	Location     int
	Bio          string
	FriendRadius int
	Photo        *string
	IsAdmin      bool
}

// UpdateProfileInput carries a partial field set for a profile update.
// Nil fields retain their previous value (merge semantics).
type UpdateProfileInput struct {
	Email        *string
	Location     *int
	Bio          *string
	FriendRadius *int
	Photo        *string
}

// NewUserService returns a new UserService.
func NewUserService(db *gorm.DB, userRepo repository.UserRepository) *UserService {
	return &UserService{db: db, userRepo: userRepo}
}

// Register validates the input, hashes the password, and persists the user.
// Duplicate username or email surfaces as a Conflict from the uniqueness
// constraints.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: string(hashed),
		Location:       in.Location,
		Bio:            in.Bio,
		FriendRadius:   in.FriendRadius,
		Photo:          in.Photo,
		IsAdmin:        in.IsAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the password against the stored hash and returns
// the user on match. The failure is the same whether the user is missing or
// the password is wrong.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

// GetUser returns the user or NotFound.
func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// ListUsers returns a page of users ordered by username.
func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// UpdateProfile applies the provided fields to the user and leaves absent
// fields untouched.
func (s *UserService) UpdateProfile(ctx context.Context, username string, in UpdateProfileInput) (*models.User, error) {
	var updated *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewUserRepository(tx)
		user, err := repo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}

		if in.Email != nil {
			if err := validation.ValidateEmail(*in.Email); err != nil {
				return models.NewValidationError(err.Error())
			}
			user.Email = *in.Email
		}
		if in.Location != nil {
			user.Location = *in.Location
		}
		if in.Bio != nil {
			user.Bio = *in.Bio
		}
		if in.FriendRadius != nil {
			user.FriendRadius = *in.FriendRadius
		}
		if in.Photo != nil {
			user.Photo = in.Photo
		}

		if err := repo.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user; dependent messages and friendships go with
// it via the cascade constraints.
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	return s.userRepo.Delete(ctx, username)
}
