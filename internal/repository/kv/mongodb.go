package kv

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "kv_entries"

type mongoEntry struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// MongoStore implements Store on a single MongoDB collection of
// {_id: key, value: bytes} documents. Prefix scans use an anchored regex on
// the key, which stays index-backed because _id is always indexed.
type MongoStore struct {
	client *mongo.Client
	dbName string
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{client: client, dbName: dbName}, nil
}

func (s *MongoStore) coll() *mongo.Collection {
	return s.client.Database(s.dbName).Collection(mongoCollection)
}

// Put upserts value under key.
func (s *MongoStore) Put(ctx context.Context, key string, value []byte) error {
	entry := mongoEntry{Key: key, Value: value}
	_, err := s.coll().ReplaceOne(ctx, bson.M{"_id": key}, entry, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert %s: %w", key, err)
	}
	return nil
}

// ScanPrefix returns the values of every key starting with prefix.
func (s *MongoStore) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	cursor, err := s.coll().Find(ctx, prefixFilter(prefix))
	if err != nil {
		return nil, fmt.Errorf("mongodb find prefix %s: %w", prefix, err)
	}
	defer cursor.Close(ctx)

	var out [][]byte
	for cursor.Next(ctx) {
		var entry mongoEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("mongodb decode entry: %w", err)
		}
		out = append(out, entry.Value)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb cursor: %w", err)
	}

	return out, nil
}

// ScanPrefixKeys returns every key starting with prefix.
func (s *MongoStore) ScanPrefixKeys(ctx context.Context, prefix string) ([]string, error) {
	cursor, err := s.coll().Find(ctx, prefixFilter(prefix), options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("mongodb find prefix %s: %w", prefix, err)
	}
	defer cursor.Close(ctx)

	var keys []string
	for cursor.Next(ctx) {
		var entry mongoEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("mongodb decode entry: %w", err)
		}
		keys = append(keys, entry.Key)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb cursor: %w", err)
	}

	return keys, nil
}

// Delete removes key. Missing keys are ignored.
func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongodb delete %s: %w", key, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func prefixFilter(prefix string) bson.M {
	return bson.M{"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
}
