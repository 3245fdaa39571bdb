package library

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staircast/staircast/pkg/errors"
)

const (
	mongoDatabase   = "staircast"
	mongoCollection = "designs"

	mongoCloseTimeout = 5 * time.Second
)

// MongoStore persists designs in a MongoDB collection, for server
// deployments where several instances share one library.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB server at uri and pings it
// once to fail fast on bad configuration. Designs live in the
// staircast database's designs collection.
func NewMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "pinging mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(mongoDatabase).Collection(mongoCollection),
	}, nil
}

// Get retrieves a design by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Design, error) {
	var d Design
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "reading design %s", id)
	}
	return &d, nil
}

// List returns all designs sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]*Design, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "listing designs")
	}

	var designs []*Design
	if err := cursor.All(ctx, &designs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decoding designs")
	}
	return designs, nil
}

// Put stores a design, replacing any existing design with the same ID.
func (s *MongoStore) Put(ctx context.Context, d *Design) error {
	if d.ID == "" {
		return errors.New(errors.ErrCodeStore, "design has no id")
	}

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": d.ID}, d, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "writing design %s", d.ID)
	}
	return nil
}

// Delete removes a design by ID.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "removing design %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeDesignNotFound, "design %s not found", id)
	}
	return nil
}

// Close disconnects from the server.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoCloseTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
