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

const employmentCollection = "employment"

type EmploymentRepository struct {
	coll *mongo.Collection
}

func NewEmploymentRepository(db *mongo.Database) *EmploymentRepository {
	return &EmploymentRepository{coll: db.Collection(employmentCollection)}
}

type employmentDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Company     string             `bson:"company"`
	Location    string             `bson:"location"`
	StartDate   string             `bson:"start_date"`
	EndDate     string             `bson:"end_date"`
	Description []string           `bson:"description"`
	CreatedOn   time.Time          `bson:"created_on"`
}

func (r *EmploymentRepository) Create(ctx context.Context, e *domain.Employment) (*domain.Employment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toEmploymentDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmploymentExists
		}
		return nil, fmt.Errorf("insert employment: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindAll returns all entries, newest first.
func (r *EmploymentRepository) FindAll(ctx context.Context) ([]domain.Employment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_on", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find employment: %w", err)
	}
	defer cur.Close(ctx)

	var docs []employmentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employment: %w", err)
	}

	entries := make([]domain.Employment, 0, len(docs))
	for i := range docs {
		entries = append(entries, *fromEmploymentDoc(&docs[i]))
	}
	return entries, nil
}

func (r *EmploymentRepository) FindByID(ctx context.Context, id string) (*domain.Employment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmploymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc employmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmploymentNotFound
		}
		return nil, fmt.Errorf("find employment: %w", err)
	}
	return fromEmploymentDoc(&doc), nil
}

func (r *EmploymentRepository) Update(ctx context.Context, e *domain.Employment) (*domain.Employment, error) {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return nil, domain.ErrEmploymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toEmploymentDoc(e))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmploymentExists
		}
		return nil, fmt.Errorf("update employment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrEmploymentNotFound
	}
	return e, nil
}

func (r *EmploymentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmploymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmploymentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique title index, preventing duplicate roles.
func (r *EmploymentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func toEmploymentDoc(e *domain.Employment) employmentDoc {
	return employmentDoc{
		Title:       e.Title,
		Company:     e.Company,
		Location:    e.Location,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedOn:   e.CreatedOn,
	}
}

func fromEmploymentDoc(d *employmentDoc) *domain.Employment {
	return &domain.Employment{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Description: d.Description,
		CreatedOn:   d.CreatedOn,
	}
}
