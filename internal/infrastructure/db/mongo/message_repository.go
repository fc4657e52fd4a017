package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

const messagesCollection = "messages"

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SenderName  string             `bson:"sender_name"`
	SenderEmail string             `bson:"sender_email"`
	Subject     string             `bson:"subject"`
	Body        string             `bson:"body"`
	Status      string             `bson:"status"`
	ReceivedAt  time.Time          `bson:"received_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, messageDoc{
		SenderName:  m.SenderName,
		SenderEmail: m.SenderEmail,
		Subject:     m.Subject,
		Body:        m.Body,
		Status:      string(m.Status),
		ReceivedAt:  m.ReceivedAt,
		UpdatedAt:   m.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindAll returns all messages, newest first.
func (r *MessageRepository) FindAll(ctx context.Context) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "received_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(docs))
	for i := range docs {
		messages = append(messages, *fromMessageDoc(&docs[i]))
	}
	return messages, nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc messageDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return fromMessageDoc(&doc), nil
}

// UpdateStatus sets the message status and returns the updated document.
func (r *MessageRepository) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc messageDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("update message status: %w", err)
	}
	return fromMessageDoc(&doc), nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func fromMessageDoc(d *messageDoc) *domain.Message {
	return &domain.Message{
		ID:          d.ID.Hex(),
		SenderName:  d.SenderName,
		SenderEmail: d.SenderEmail,
		Subject:     d.Subject,
		Body:        d.Body,
		Status:      domain.MessageStatus(d.Status),
		ReceivedAt:  d.ReceivedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
