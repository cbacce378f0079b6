package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/edublog/blog-system/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(postsCollection)}
}

type mongoPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Author    string             `bson:"author"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (p mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

// objectID parses a hex id. Ids that cannot name a document are reported as
// not found rather than as a client error.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrPostNotFound
	}
	return oid, nil
}

// List returns all posts in natural (insertion) order.
func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{})
}

// Search matches query literally, case-insensitively, against title or content.
func (r *PostRepository) Search(ctx context.Context, query string) ([]*domain.Post, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return r.find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"content": pattern},
		},
	})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}

	var docs []mongoPost
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toDomain())
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoPost
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts a new post document and returns it with its generated id.
func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		ID:        primitive.NewObjectID(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return doc.toDomain(), nil
}

// Update replaces title, content and author in place and returns the
// document as it is after the write.
func (r *PostRepository) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	oid, err := objectID(p.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":      p.Title,
		"content":    p.Content,
		"author":     p.Author,
		"updated_at": p.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc mongoPost
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
