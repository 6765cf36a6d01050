package preset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/honeycomb/pkg/settings"
)

// Default MongoDB names.
const (
	DefaultDatabase   = "honeycomb"
	DefaultCollection = "presets"
)

// MongoStore keeps presets in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// presetDoc is the stored form of a Preset. IDs are kept as strings so the
// documents stay readable in the mongo shell.
type presetDoc struct {
	ID        string            `bson:"_id"`
	Name      string            `bson:"name"`
	Settings  settings.Settings `bson:"settings"`
	CreatedAt time.Time         `bson:"created_at"`
}

// NewMongoStore connects to uri and uses database/presets. An empty
// database selects [DefaultDatabase].
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = DefaultDatabase
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, p *Preset) error {
	doc := presetDoc{ID: p.ID.String(), Name: p.Name, Settings: p.Settings, CreatedAt: p.CreatedAt}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save preset: %w", err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id uuid.UUID) (*Preset, error) {
	var doc presetDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset: %w", err)
	}
	return doc.preset()
}

func (s *MongoStore) List(ctx context.Context) ([]*Preset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var docs []presetDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	out := make([]*Preset, 0, len(docs))
	for _, d := range docs {
		p, err := d.preset()
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if res.DeletedCount == 0 {
		return notFound(id)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (d presetDoc) preset() (*Preset, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", d.ID, err)
	}
	return &Preset{ID: id, Name: d.Name, Settings: d.Settings, CreatedAt: d.CreatedAt.UTC()}, nil
}

var _ Store = (*MongoStore)(nil)
