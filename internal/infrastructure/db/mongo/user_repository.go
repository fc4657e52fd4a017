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

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Email             string             `bson:"email"`
	PasswordHash      string             `bson:"password_hash"`
	IsAdmin           bool               `bson:"is_admin"`
	FullName          string             `bson:"full_name"`
	JobTitle          string             `bson:"job_title"`
	Bio               string             `bson:"bio"`
	ShortBio          string             `bson:"short_bio"`
	ProfilePictureURL string             `bson:"profile_picture_url,omitempty"`
	ProfilePictureID  string             `bson:"profile_picture_id,omitempty"`
	ResumeURL         string             `bson:"resume_url,omitempty"`
	ResumeID          string             `bson:"resume_id,omitempty"`
	SocialLinks       socialLinksDoc     `bson:"social_links"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

type socialLinksDoc struct {
	GitHub   string `bson:"github,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty"`
	Facebook string `bson:"facebook,omitempty"`
	GitLab   string `bson:"gitlab,omitempty"`
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toUserDoc(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindAdmin(ctx context.Context) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"is_admin": true})
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := toUserDoc(user)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the unique email index — the authoritative uniqueness
// guard; the service-level pre-check is advisory only.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: uniqueIndex(),
	})
	return err
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return fromUserDoc(&doc), nil
}

func toUserDoc(u *domain.User) userDoc {
	return userDoc{
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		IsAdmin:           u.IsAdmin,
		FullName:          u.FullName,
		JobTitle:          u.JobTitle,
		Bio:               u.Bio,
		ShortBio:          u.ShortBio,
		ProfilePictureURL: u.ProfilePictureURL,
		ProfilePictureID:  u.ProfilePictureID,
		ResumeURL:         u.ResumeURL,
		ResumeID:          u.ResumeID,
		SocialLinks: socialLinksDoc{
			GitHub:   u.SocialLinks.GitHub,
			LinkedIn: u.SocialLinks.LinkedIn,
			Facebook: u.SocialLinks.Facebook,
			GitLab:   u.SocialLinks.GitLab,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func fromUserDoc(d *userDoc) *domain.User {
	return &domain.User{
		ID:                d.ID.Hex(),
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		IsAdmin:           d.IsAdmin,
		FullName:          d.FullName,
		JobTitle:          d.JobTitle,
		Bio:               d.Bio,
		ShortBio:          d.ShortBio,
		ProfilePictureURL: d.ProfilePictureURL,
		ProfilePictureID:  d.ProfilePictureID,
		ResumeURL:         d.ResumeURL,
		ResumeID:          d.ResumeID,
		SocialLinks: domain.SocialLinks{
			GitHub:   d.SocialLinks.GitHub,
			LinkedIn: d.SocialLinks.LinkedIn,
			Facebook: d.SocialLinks.Facebook,
			GitLab:   d.SocialLinks.GitLab,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
