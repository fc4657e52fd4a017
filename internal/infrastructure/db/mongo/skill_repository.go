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

const skillsCollection = "skills"

type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

type skillDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Icon      string             `bson:"icon"`
	Category  string             `bson:"category"`
	CreatedOn time.Time          `bson:"created_on"`
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, skillDoc{
		Name:      s.Name,
		Icon:      s.Icon,
		Category:  s.Category,
		CreatedOn: s.CreatedOn,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSkillExists
		}
		return nil, fmt.Errorf("insert skill: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *SkillRepository) FindAll(ctx context.Context) ([]domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer cur.Close(ctx)

	var docs []skillDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}

	skills := make([]domain.Skill, 0, len(docs))
	for i := range docs {
		skills = append(skills, *fromSkillDoc(&docs[i]))
	}
	return skills, nil
}

func (r *SkillRepository) FindByName(ctx context.Context, name string) (*domain.Skill, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc skillDoc
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return fromSkillDoc(&doc), nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSkillNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSkillNotFound
	}
	return nil
}

// EnsureIndexes creates the unique name index. Names are stored upper-cased,
// so the index is effectively case-insensitive.
func (r *SkillRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func fromSkillDoc(d *skillDoc) *domain.Skill {
	return &domain.Skill{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Icon:      d.Icon,
		Category:  d.Category,
		CreatedOn: d.CreatedOn,
	}
}
