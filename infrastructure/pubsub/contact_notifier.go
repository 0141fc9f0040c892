package pubsub

import (
	"context"
	"encoding/json"
	"errors"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"

	"cloud.google.com/go/pubsub"
)

var ErrNotConfigured = errors.New("pubsub client not configured")

// ContactNotifier publishes contact-received events for downstream consumers
// (CRM sync, moderation). Publishing is best-effort; the caller logs and
// continues when it fails.
type ContactNotifier struct {
	client *pubsub.Client
	topic  string
}

func NewContactNotifier(client *pubsub.Client, topic string) repository.INotifier {
	return &ContactNotifier{
		client: client,
		topic:  topic,
	}
}

func (contactNotifier *ContactNotifier) ContactReceived(ctx context.Context, msg *model.ContactMessage) (string, error) {
	if contactNotifier.client == nil {
		return "", ErrNotConfigured
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return Publish(ctx, contactNotifier.client, contactNotifier.topic, payload)
}
