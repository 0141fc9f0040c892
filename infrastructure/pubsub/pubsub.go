package pubsub

import (
	"context"

	"axlas-recipes/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

// NewPubSub connects to Google Pub/Sub. Callers tolerate a nil client when
// the project is not configured.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Pub/Sub client not available")
		return nil, err
	}
	return client, nil
}

// Publish sends payload to topicName, creating the topic when missing.
func Publish(ctx context.Context, client *pubsub.Client, topicName string, payload []byte) (string, error) {
	topic := client.Topic(topicName)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return "", err
	}
	if !exists {
		logger.GetLogger().WithField("topic", topicName).Info("Topic doesn't exist - creating it")
		if _, err := client.CreateTopic(ctx, topicName); err != nil {
			return "", err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{Data: payload}).Get(ctx)
	if err != nil {
		return "", err
	}

	logger.GetLogger().WithField("server ID", serverID).Info("Message published")
	return serverID, nil
}
