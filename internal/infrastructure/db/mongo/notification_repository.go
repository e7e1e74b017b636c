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

const notificationsCollection = "notifications"

// NotificationRepository persists notifications in the notifications
// collection. Documents expire automatically via the TTL index created in
// EnsureIndexes.
type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

type mongoNotification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Message       string             `bson:"message"`
	Type          string             `bson:"type"`
	IsRead        bool               `bson:"is_read"`
	Link          string             `bson:"link,omitempty"`
	RecipientRole string             `bson:"recipient_role,omitempty"`
	RecipientID   string             `bson:"recipient_id,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (mn mongoNotification) toDomain() *domain.Notification {
	return &domain.Notification{
		ID:            mn.ID.Hex(),
		Message:       mn.Message,
		Type:          domain.NotificationType(mn.Type),
		IsRead:        mn.IsRead,
		Link:          mn.Link,
		RecipientRole: domain.RecipientRole(mn.RecipientRole),
		RecipientID:   mn.RecipientID,
		CreatedAt:     mn.CreatedAt,
	}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNotification{
		Message:       n.Message,
		Type:          string(n.Type),
		IsRead:        n.IsRead,
		Link:          n.Link,
		RecipientRole: string(n.RecipientRole),
		RecipientID:   n.RecipientID,
		CreatedAt:     n.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	created := *n
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *NotificationRepository) ListUnread(ctx context.Context, limit int) ([]*domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"is_read": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Notification
	for cur.Next(ctx) {
		var mn mongoNotification
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	return out, nil
}

// MarkRead sets is_read in a single document update and returns the
// post-image. Re-marking a read notification matches the same document and
// returns it unchanged, which is what makes the operation idempotent.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotificationNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mn mongoNotification
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"is_read": true}},
		opts,
	).Decode(&mn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"is_read": false})
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates the lookup indexes and the TTL index that purges
// notifications once the retention window elapses.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ttl := int32(domain.NotificationRetention / time.Second)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_read", Value: 1}}},
		{Keys: bson.D{{Key: "recipient_role", Value: 1}}},
		{Keys: bson.D{{Key: "recipient_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(ttl),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
