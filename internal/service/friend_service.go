package service

import (
	"context"

	"friender/internal/models"
	"friender/internal/repository"

	"gorm.io/gorm"
)

// FriendService provides friend-request and friendship business logic.
type FriendService struct {
	db         *gorm.DB
	friendRepo repository.FriendshipRepository
	userRepo   repository.UserRepository
}

// NewFriendService returns a new FriendService.
func NewFriendService(db *gorm.DB, friendRepo repository.FriendshipRepository, userRepo repository.UserRepository) *FriendService {
	return &FriendService{db: db, friendRepo: friendRepo, userRepo: userRepo}
}

// SendRequest creates a pending friend request from sender to recipient.
// Any existing row between the pair, in either direction and any status,
// makes a re-request a Conflict.
func (s *FriendService) SendRequest(ctx context.Context, sender, recipient string) (*models.Friendship, error) {
	if sender == recipient {
		return nil, models.NewValidationError("Cannot send a friend request to yourself")
	}

	var created *models.Friendship
	err := s.db.Transaction(func(tx *gorm.DB) error {
		userRepo := repository.NewUserRepository(tx)
		friendRepo := repository.NewFriendshipRepository(tx)

		if _, err := userRepo.GetByUsername(ctx, recipient); err != nil {
			return err
		}

		existing, err := friendRepo.GetBetween(ctx, sender, recipient)
		if err != nil {
			return err
		}
		if existing != nil {
			switch existing.Status {
			case models.FriendshipStatusAccepted:
				return models.NewConflictError("You are already friends")
			case models.FriendshipStatusPending:
				if existing.Sender == sender {
					return models.NewConflictError("Friend request already sent")
				}
				return models.NewConflictError("You already have a pending friend request from this user")
			default:
				return models.NewConflictError("A friend request between you already exists")
			}
		}

		friendship := &models.Friendship{
			Sender:    sender,
			Recipient: recipient,
			Status:    models.FriendshipStatusPending,
		}
		if err := friendRepo.Create(ctx, friendship); err != nil {
			return err
		}
		created = friendship
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ChangeStatus transitions a pending request to accepted or rejected.
// Only the recipient may decide, only those two values are legal, and a
// terminal row cannot transition again.
func (s *FriendService) ChangeStatus(ctx context.Context, actor string, id uint, status models.FriendshipStatus) (*models.Friendship, error) {
	if !status.Valid() || status == models.FriendshipStatusPending {
		return nil, models.NewValidationError("Status must be 'accepted' or 'rejected'")
	}

	var updated *models.Friendship
	err := s.db.Transaction(func(tx *gorm.DB) error {
		friendRepo := repository.NewFriendshipRepository(tx)

		friendship, err := friendRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if friendship.Recipient != actor {
			return models.NewForbiddenError("Only the recipient can decide a friend request")
		}
		if friendship.Status != models.FriendshipStatusPending {
			return models.NewConflictError("Friend request is not pending")
		}

		if err := friendRepo.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		friendship.Status = status
		updated = friendship
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetFriends returns the symmetric friend set for the user.
func (s *FriendService) GetFriends(ctx context.Context, username string) ([]models.User, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.friendRepo.GetFriends(ctx, username)
}

// GetPendingRequests returns pending requests addressed to the user.
func (s *FriendService) GetPendingRequests(ctx context.Context, username string) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingRequests(ctx, username)
}

// GetSentRequests returns pending requests the user has sent.
func (s *FriendService) GetSentRequests(ctx context.Context, username string) ([]models.Friendship, error) {
	return s.friendRepo.GetSentRequests(ctx, username)
}

// RemoveFriend deletes an accepted friendship between the two users.
func (s *FriendService) RemoveFriend(ctx context.Context, username, other string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		friendRepo := repository.NewFriendshipRepository(tx)

		friendship, err := friendRepo.GetBetween(ctx, username, other)
		if err != nil {
			return err
		}
		if friendship == nil || friendship.Status != models.FriendshipStatusAccepted {
			return models.NewNotFoundError("Friendship", other)
		}
		return friendRepo.RemoveBetween(ctx, username, other)
	})
}
