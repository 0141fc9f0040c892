package persistence

import (
	"context"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const contactCollection = "contact_messages"

// ContactMessageRepository stores contact-form submissions in MongoDB.
type ContactMessageRepository struct {
	mongoDb *mongo.Client
	dbName  string
}

func NewContactMessageRepository(mongoDb *mongo.Client, dbName string) repository.IContactMessage {
	return &ContactMessageRepository{
		mongoDb: mongoDb,
		dbName:  dbName,
	}
}

func (r *ContactMessageRepository) Insert(ctx context.Context, msg *model.ContactMessage) error {
	if r.mongoDb == nil {
		logger.GetLogger().Info("MongoDB client is nil - contact message not persisted")
		return nil
	}
	if msg.ID == "" {
		msg.ID = bson.NewObjectID().Hex()
	}
	collection := r.mongoDb.Database(r.dbName).Collection(contactCollection)
	if _, err := collection.InsertOne(ctx, msg); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while inserting contact message")
		return err
	}
	return nil
}

func (r *ContactMessageRepository) List(ctx context.Context, limit int) ([]model.ContactMessage, error) {
	if r.mongoDb == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	collection := r.mongoDb.Database(r.dbName).Collection(contactCollection)
	cursor, err := collection.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching contact messages")
		return nil, err
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
		}
	}(cursor, ctx)

	var messages []model.ContactMessage
	for cursor.Next(ctx) {
		var msg model.ContactMessage
		if err := cursor.Decode(&msg); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error while decoding contact message")
			continue
		}
		messages = append(messages, msg)
	}
	return messages, cursor.Err()
}
