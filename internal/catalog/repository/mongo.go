package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/makoye224/cwru-courses-backend/internal/catalog"
	"github.com/makoye224/cwru-courses-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TextIndexName is the name of the full-text index over searchable course fields.
const TextIndexName = "course_text"

// indexTimeout bounds index creation at construction time.
var indexTimeout = 10 * time.Second

// MongoRepo stores each course, reviews embedded, as one document keyed by _id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	r := &MongoRepo{col: col}
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()
	if err := r.EnsureIndexes(ctx); err != nil {
		logger.Warnf("catalog: ensure indexes on %s: %v", col.Name(), err)
	}
	return r
}

// EnsureIndexes creates the text index used by Search. Creating an index
// that already exists with the same keys and options is a no-op in MongoDB.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := m.col.Indexes().CreateOne(ctx, TextIndexModel())
	return err
}

// TextIndexModel describes the text index. Title matches weigh most.
func TextIndexModel() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "aliases", Value: "text"},
		},
		Options: options.Index().
			SetName(TextIndexName).
			SetWeights(bson.D{{Key: "title", Value: 4}, {Key: "aliases", Value: 2}, {Key: "description", Value: 1}}),
	}
}

func (m *MongoRepo) Insert(ctx context.Context, c *catalog.Course) error {
	_, err := m.col.InsertOne(ctx, c)
	return err
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*catalog.Course, error) {
	var c catalog.Course
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.Normalize()
	return &c, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]catalog.Course, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// Search runs a $text query and orders hits by text score.
func (m *MongoRepo) Search(ctx context.Context, text string) ([]catalog.Course, error) {
	filter, opts := SearchQuery(text)
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// SearchQuery builds the filter and find options for a text search.
func SearchQuery(text string) (bson.M, *options.FindOptions) {
	score := bson.M{"score": bson.M{"$meta": "textScore"}}
	filter := bson.M{"$text": bson.M{"$search": text}}
	return filter, options.Find().SetProjection(score).SetSort(score)
}

// Delete removes the course document and with it every embedded review.
func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Save replaces the stored document. Concurrent saves of the same course are
// last-write-wins.
func (m *MongoRepo) Save(ctx context.Context, c *catalog.Course) error {
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]catalog.Course, error) {
	defer cur.Close(ctx)
	out := []catalog.Course{}
	for cur.Next(ctx) {
		var c catalog.Course
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		c.Normalize()
		out = append(out, c)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
