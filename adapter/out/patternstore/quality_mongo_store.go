package patternstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quality_server/core/domain"
)

// MongoStore keeps one document per domain, upserted wholesale on every
// learn. Per-key atomicity makes it safe for multi-worker deployments.
type MongoStore struct {
	collection *mongo.Collection
}

type mongoPattern struct {
	Domain       string             `bson:"_id"`
	Distribution map[string]float64 `bson:"distribution"`
	LastUpdated  time.Time          `bson:"last_updated"`
	TTLMs        int64              `bson:"ttl_ms"`
}

// NewMongoClient connects a MongoDB client with pooled connections.
func NewMongoClient(url string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(url).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// NewMongoStore creates a Mongo-backed pattern store.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{collection: client.Database(database).Collection("domain_patterns")}
}

// Get returns the stored pattern, or (nil, nil) when absent.
func (s *MongoStore) Get(ctx context.Context, mailDomain string) (*domain.DomainPattern, error) {
	var doc mongoPattern
	err := s.collection.FindOne(ctx, bson.M{"_id": mailDomain}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find pattern %s: %w", mailDomain, err)
	}

	dist := make(map[domain.PatternKind]float64, len(doc.Distribution))
	for kind, prob := range doc.Distribution {
		dist[domain.PatternKind(kind)] = prob
	}
	return &domain.DomainPattern{
		Domain:       doc.Domain,
		Distribution: dist,
		LastUpdated:  doc.LastUpdated,
		TTL:          time.Duration(doc.TTLMs) * time.Millisecond,
	}, nil
}

// Put upserts the domain's pattern document.
func (s *MongoStore) Put(ctx context.Context, pattern *domain.DomainPattern) error {
	dist := make(map[string]float64, len(pattern.Distribution))
	for kind, prob := range pattern.Distribution {
		dist[string(kind)] = prob
	}
	doc := mongoPattern{
		Domain:       pattern.Domain,
		Distribution: dist,
		LastUpdated:  pattern.LastUpdated,
		TTLMs:        pattern.TTL.Milliseconds(),
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"_id": pattern.Domain}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo upsert pattern %s: %w", pattern.Domain, err)
	}
	return nil
}
