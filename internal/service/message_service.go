package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"friender/internal/models"
	"friender/internal/repository"
)

// MessageService provides direct-message business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

// Send persists a message from one user to another. The id and timestamp
// are server-assigned; a missing endpoint surfaces from the foreign keys.
func (s *MessageService) Send(ctx context.Context, from, to, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Message text is required")
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLen {
		return nil, models.NewValidationError("Message text exceeds 140 characters")
	}

	msg := &models.Message{
		Text:     text,
		FromUser: from,
		ToUser:   to,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns every message the user sent or received, newest first.
func (s *MessageService) History(ctx context.Context, username string) ([]models.Message, error) {
	if _, err := s.userRepo.GetByUsername(ctx, username); err != nil {
		return nil, err
	}
	return s.messageRepo.ListForUser(ctx, username)
}
