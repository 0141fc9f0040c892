package usecase

import (
	"context"
	"errors"
	"strings"

	"axlas-recipes/domain/dto"
	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"
	"axlas-recipes/infrastructure/utils"
)

var (
	ErrMissingFields     = errors.New("Missing fields")
	ErrMailNotConfigured = errors.New("Email not configured")
)

// IContactUsecase handles contact-form submissions and their admin listing.
type IContactUsecase interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
	ListMessages(ctx context.Context, limit int) ([]model.ContactMessage, error)
}

// ContactUsecase persists a submission, relays it by mail and publishes an
// event. Only the mail relay is load-bearing; store and notify are
// best-effort so a broken datastore never swallows a reader's message.
type ContactUsecase struct {
	contactRepo repository.IContactMessage
	mailer      repository.IMailer
	notifier    repository.INotifier
}

func NewContactUsecase(
	contactRepo repository.IContactMessage,
	mailer repository.IMailer,
	notifier repository.INotifier,
) IContactUsecase {
	return &ContactUsecase{
		contactRepo: contactRepo,
		mailer:      mailer,
		notifier:    notifier,
	}
}

func (contactUsecase *ContactUsecase) Submit(ctx context.Context, req *dto.ContactRequest) error {
	if req == nil ||
		strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return ErrMissingFields
	}
	if contactUsecase.mailer == nil {
		return ErrMailNotConfigured
	}

	msg := &model.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: utils.GetCurrentTime(),
	}

	if contactUsecase.contactRepo != nil {
		if err := contactUsecase.contactRepo.Insert(ctx, msg); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Contact message not persisted")
		}
	}

	if err := contactUsecase.mailer.SendContact(msg); err != nil {
		return err
	}

	if contactUsecase.notifier != nil {
		if _, err := contactUsecase.notifier.ContactReceived(ctx, msg); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Contact event not published")
		}
	}
	return nil
}

func (contactUsecase *ContactUsecase) ListMessages(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if contactUsecase.contactRepo == nil {
		return nil, nil
	}
	return contactUsecase.contactRepo.List(ctx, limit)
}
