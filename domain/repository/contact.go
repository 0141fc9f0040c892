package repository

import (
	"context"

	"axlas-recipes/domain/model"
)

// IContactMessage stores contact-form submissions.
type IContactMessage interface {
	Insert(ctx context.Context, msg *model.ContactMessage) error
	// List returns stored messages newest first, up to limit.
	List(ctx context.Context, limit int) ([]model.ContactMessage, error)
}

// IMailer relays a contact submission to the site owner over SMTP.
type IMailer interface {
	SendContact(msg *model.ContactMessage) error
}

// INotifier publishes domain events for downstream consumers.
type INotifier interface {
	ContactReceived(ctx context.Context, msg *model.ContactMessage) (string, error)
}
