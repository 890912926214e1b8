package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	collection *mongo.Collection
}

// ConnectMongo opens a client and checks it with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection("submissions")}
}

type submissionDoc struct {
	Reference string    `bson:"_id"`
	Kind      string    `bson:"kind"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Payload   bson.M    `bson:"payload"`
	CreatedAt time.Time `bson:"created_at"`
}

func (s *MongoStore) Save(ctx context.Context, e Envelope) error {
	var payload bson.M
	if err := bson.UnmarshalExtJSON(e.Payload, false, &payload); err != nil {
		return fmt.Errorf("convert payload: %w", err)
	}
	_, err := s.collection.InsertOne(ctx, submissionDoc{
		Reference: e.Reference,
		Kind:      string(e.Kind),
		Name:      e.Name,
		Email:     e.Email,
		Payload:   payload,
		CreatedAt: e.CreatedAt,
	})
	return err
}

func (s *MongoStore) List(ctx context.Context, kind Kind) ([]Envelope, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = string(kind)
	}
	findOptions := options.Find()
	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []submissionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]Envelope, 0, len(docs))
	for _, d := range docs {
		payload, err := json.Marshal(d.Payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload %s: %w", d.Reference, err)
		}
		out = append(out, Envelope{
			Reference: d.Reference,
			Kind:      Kind(d.Kind),
			Name:      d.Name,
			Email:     d.Email,
			Payload:   payload,
			CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}
