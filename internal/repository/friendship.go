// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"friender/internal/models"

	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetBetween(ctx context.Context, userA, userB string) (*models.Friendship, error)
	GetFriends(ctx context.Context, username string) ([]models.User, error)
	GetPendingRequests(ctx context.Context, username string) ([]models.Friendship, error)
	GetSentRequests(ctx context.Context, username string) ([]models.Friendship, error)
	UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error
	Delete(ctx context.Context, id uint) error
	RemoveBetween(ctx context.Context, userA, userB string) error
}

// friendshipRepository implements FriendshipRepository
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository creates a new friendship repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		return translateWriteError(err,
			"Friend request already exists",
			"Friend request endpoint user does not exist")
	}
	return nil
}

func (r *friendshipRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetBetween finds the friendship row between two users in either
// direction. Returns (nil, nil) when no row exists.
func (r *friendshipRepository) GetBetween(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			userA, userB, userB, userA).
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

// GetFriends derives the symmetric friend set: every other user on an
// accepted row where username is sender or recipient. Pending and rejected
// rows are excluded entirely, and DISTINCT guards against duplicates should
// accepted rows exist in both directions for the same pair.
func (r *friendshipRepository) GetFriends(ctx context.Context, username string) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Distinct("users.*").
		Joins("JOIN friendships f ON (users.username = f.sender OR users.username = f.recipient)").
		Where("f.status = ? AND (f.sender = ? OR f.recipient = ?) AND users.username <> ?",
			models.FriendshipStatusAccepted, username, username, username).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *friendshipRepository) GetPendingRequests(ctx context.Context, username string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("recipient = ? AND status = ?", username, models.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

func (r *friendshipRepository) GetSentRequests(ctx context.Context, username string) ([]models.Friendship, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("sender = ? AND status = ?", username, models.FriendshipStatusPending).
		Order("created_at DESC").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return friendships, nil
}

// UpdateStatus overwrites the status of the row with the given id.
// Status-value and transition rules are enforced by the service layer.
func (r *friendshipRepository) UpdateStatus(ctx context.Context, id uint, status models.FriendshipStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Friendship", id)
	}
	return nil
}

func (r *friendshipRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Friendship{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Friendship", id)
	}
	return nil
}

// RemoveBetween deletes the friendship row between two users regardless of
// direction.
func (r *friendshipRepository) RemoveBetween(ctx context.Context, userA, userB string) error {
	if err := r.db.WithContext(ctx).
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			userA, userB, userB, userA).
		Delete(&models.Friendship{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
