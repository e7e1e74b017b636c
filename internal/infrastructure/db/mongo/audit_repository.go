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

	"github.com/oceanlk/admin-api/internal/core/domain"
)

const (
	auditCollection = "audit_logs"

	// Capped collection bounds: oldest entries are evicted first once either
	// limit is hit.
	auditMaxBytes     = 10 * 1024 * 1024
	auditMaxDocuments = 5000
)

// AuditRepository persists audit entries in a capped collection. The
// application never updates or deletes entries; eviction is the storage
// engine's job.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Username   string             `bson:"username"`
	Action     string             `bson:"action"`
	EntityType string             `bson:"entity_type"`
	EntityID   string             `bson:"entity_id,omitempty"`
	Details    string             `bson:"details,omitempty"`
	Timestamp  time.Time          `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAuditEntry{
		Username:   entry.Username,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Details:    entry.Details,
		Timestamp:  entry.Timestamp,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.AuditEntry
	for cur.Next(ctx) {
		var me mongoAuditEntry
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		out = append(out, &domain.AuditEntry{
			ID:         me.ID.Hex(),
			Username:   me.Username,
			Action:     me.Action,
			EntityType: me.EntityType,
			EntityID:   me.EntityID,
			Details:    me.Details,
			Timestamp:  me.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return out, nil
}

// EnsureAuditCollection creates the capped audit_logs collection and its lookup
// indexes. An already-existing collection (NamespaceExists, code 48) is fine:
// the service was simply restarted.
func EnsureAuditCollection(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := options.CreateCollection().
		SetCapped(true).
		SetSizeInBytes(auditMaxBytes).
		SetMaxDocuments(auditMaxDocuments)

	if err := db.CreateCollection(ctx, auditCollection, opts); err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != 48 {
			return fmt.Errorf("create audit collection: %w", err)
		}
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "entity_type", Value: 1}}},
		{Keys: bson.D{{Key: "entity_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
	}
	_, err := db.Collection(auditCollection).Indexes().CreateMany(ctx, indexes)
	return err
}
