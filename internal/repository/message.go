// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"friender/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations.
// Messages are immutable: there is no update or delete operation.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	ListForUser(ctx context.Context, username string) ([]models.Message, error)
}

// messageRepository implements MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return translateWriteError(err,
			"Message already exists",
			"Message endpoint user does not exist")
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var msg models.Message
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &msg, nil
}

// ListForUser returns every message where the user is sender or recipient,
// newest first. A single OR query keeps the sent and received sets unioned
// without double-counting a self-addressed message.
func (r *messageRepository) ListForUser(ctx context.Context, username string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.WithContext(ctx).
		Where("from_user = ? OR to_user = ?", username, username).
		Order("timestamp DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
