package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

const subscribersCollection = "subscribers"

type SubscriberRepository struct {
	coll *mongo.Collection
}

func NewSubscriberRepository(db *mongo.Database) *SubscriberRepository {
	return &SubscriberRepository{coll: db.Collection(subscribersCollection)}
}

type subscriberDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Email            string             `bson:"email"`
	UnsubscribeToken string             `bson:"unsubscribe_token"`
	CreatedAt        time.Time          `bson:"created_at"`
}

func (r *SubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) (*domain.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, subscriberDoc{
		Email:            s.Email,
		UnsubscribeToken: s.UnsubscribeToken,
		CreatedAt:        s.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSubscriberExists
		}
		return nil, fmt.Errorf("insert subscriber: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SubscriberRepository) FindByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *SubscriberRepository) FindByToken(ctx context.Context, token string) (*domain.Subscriber, error) {
	return r.findOne(ctx, bson.M{"unsubscribe_token": token})
}

func (r *SubscriberRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubscriberNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubscriberNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index and the token lookup index.
func (r *SubscriberRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "unsubscribe_token", Value: 1}}},
	})
	return err
}

func (r *SubscriberRepository) findOne(ctx context.Context, filter bson.M) (*domain.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc subscriberDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("find subscriber: %w", err)
	}
	return &domain.Subscriber{
		ID:               doc.ID.Hex(),
		Email:            doc.Email,
		UnsubscribeToken: doc.UnsubscribeToken,
		CreatedAt:        doc.CreatedAt,
	}, nil
}
