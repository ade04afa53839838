package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

// ContactService stores messages left through the contact form.
type ContactService struct {
	messages   repository.ContactRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewContactService builds the service.
func NewContactService(messages repository.ContactRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ContactService {
	return &ContactService{messages: messages, dispatcher: dispatcher, logger: logger}
}

// Submit validates and persists a contact message.
func (s *ContactService) Submit(ctx context.Context, name, email, body string) (*domain.ContactMessage, error) {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "nombre")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(body) == "" {
		missing = append(missing, "mensaje")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"nombre, email, mensaje required",
			map[string]any{"missing": missing},
		)
	}

	message := &domain.ContactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(body),
	}
	if err := s.messages.Insert(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventContactReceived,
			Timestamp: time.Now(),
			Payload: events.ContactReceivedPayload{
				MessageID: message.ID,
				Email:     message.Email,
			},
		})
	}

	return message, nil
}
