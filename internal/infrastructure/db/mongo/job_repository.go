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

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type jobDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Company     string             `bson:"company"`
	Position    string             `bson:"position"`
	Status      string             `bson:"status"`
	AppliedDate time.Time          `bson:"applied_date"`
	Link        string             `bson:"link,omitempty"`
	Notes       string             `bson:"notes,omitempty"`
	ResumeUsed  string             `bson:"resume_used,omitempty"`
	Tags        []string           `bson:"tags,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toJobDoc(j))
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *j
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindAll returns all applications, newest first.
func (r *JobRepository) FindAll(ctx context.Context) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	var docs []jobDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, *fromJobDoc(&docs[i]))
	}
	return jobs, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return fromJobDoc(&doc), nil
}

func (r *JobRepository) Update(ctx context.Context, j *domain.Job) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(j.ID)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toJobDoc(j))
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrJobNotFound
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func toJobDoc(j *domain.Job) jobDoc {
	return jobDoc{
		Company:     j.Company,
		Position:    j.Position,
		Status:      string(j.Status),
		AppliedDate: j.AppliedDate,
		Link:        j.Link,
		Notes:       j.Notes,
		ResumeUsed:  j.ResumeUsed,
		Tags:        j.Tags,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}

func fromJobDoc(d *jobDoc) *domain.Job {
	return &domain.Job{
		ID:          d.ID.Hex(),
		Company:     d.Company,
		Position:    d.Position,
		Status:      domain.JobStatus(d.Status),
		AppliedDate: d.AppliedDate,
		Link:        d.Link,
		Notes:       d.Notes,
		ResumeUsed:  d.ResumeUsed,
		Tags:        d.Tags,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
