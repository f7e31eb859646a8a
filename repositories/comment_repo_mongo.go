package repositories

import (
	"context"
	"time"

	"CommentCase/models"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	defaultCommentsCollection = "comments"
	defaultMongoOpTimeout     = 5 * time.Second
)

// MongoOptions configures the Mongo-backed repository.
type MongoOptions struct {
	Client     *mongo.Client
	Database   string
	Collection string        // default "comments"
	Timeout    time.Duration // per operation, default 5s
}

type mongoCommentRepo struct {
	comments collection
	timeout  time.Duration
}

// NewMongoCommentRepository returns a repository over a Mongo collection and
// makes sure the created_at index exists.
func NewMongoCommentRepository(ctx context.Context, opts MongoOptions) (CommentRepository, error) {
	if opts.Client == nil {
		return nil, errors.New("mongo client is required")
	}
	if opts.Database == "" {
		return nil, errors.New("mongo database name is required")
	}
	name := opts.Collection
	if name == "" {
		name = defaultCommentsCollection
	}
	coll := mongoCollection{coll: opts.Client.Database(opts.Database).Collection(name)}
	repo := newMongoRepoWithCollection(coll, opts.Timeout)

	ctx, cancel := repo.withTimeout(ctx)
	defer cancel()
	if err := ensureIndexes(ctx, coll); err != nil {
		return nil, errors.Wrap(err, "mongo ensure indexes")
	}
	return repo, nil
}

func newMongoRepoWithCollection(coll collection, timeout time.Duration) *mongoCommentRepo {
	if timeout <= 0 {
		timeout = defaultMongoOpTimeout
	}
	return &mongoCommentRepo{comments: coll, timeout: timeout}
}

func (r *mongoCommentRepo) FindAll(ctx context.Context) ([]models.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.comments.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "mongo find comments")
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	out := []models.Comment{}
	for cur.Next(ctx) {
		var c models.Comment
		if err := cur.Decode(&c); err != nil {
			return nil, errors.Wrap(err, "mongo decode comment")
		}
		out = append(out, c)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "mongo cursor")
	}
	return out, nil
}

func (r *mongoCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	if c.ID == "" {
		return errors.New("comment id is required")
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return errors.Wrap(r.comments.InsertOne(ctx, c), "mongo insert comment")
}

func (r *mongoCommentRepo) DeleteByID(ctx context.Context, id string) (*models.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var c models.Comment
	if err := r.comments.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, errors.Wrap(err, "mongo delete comment")
	}
	return &c, nil
}

func (r *mongoCommentRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, r.timeout)
}

func ensureIndexes(ctx context.Context, coll collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	return err
}

// Thin wrappers around the driver so tests can substitute an in-memory collection.

type collection interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (cursor, error)
	InsertOne(ctx context.Context, doc any) error
	FindOneAndDelete(ctx context.Context, filter any) singleResult
	Indexes() indexView
}

type indexView interface {
	CreateOne(ctx context.Context, model mongo.IndexModel) (string, error)
}

type singleResult interface {
	Decode(val any) error
}

type cursor interface {
	Close(ctx context.Context) error
	Decode(val any) error
	Err() error
	Next(ctx context.Context) bool
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c mongoCollection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (cursor, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (c mongoCollection) InsertOne(ctx context.Context, doc any) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c mongoCollection) FindOneAndDelete(ctx context.Context, filter any) singleResult {
	return c.coll.FindOneAndDelete(ctx, filter)
}

func (c mongoCollection) Indexes() indexView {
	return mongoIndexView{view: c.coll.Indexes()}
}

type mongoIndexView struct {
	view mongo.IndexView
}

func (v mongoIndexView) CreateOne(ctx context.Context, model mongo.IndexModel) (string, error) {
	return v.view.CreateOne(ctx, model)
}
