// Package contacts stores messages sent through the contacts page form.
package contacts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autoparts/storefront/models"
)

const collection = "contact_messages"

// Inbox accepts contact form messages.
type Inbox interface {
	Submit(ctx context.Context, msg models.ContactMessage) (Receipt, error)
}

type Receipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type record struct {
	ID         string    `bson:"_id"`
	Name       string    `bson:"name"`
	Contact    string    `bson:"contact"`
	Message    string    `bson:"message"`
	SessionID  string    `bson:"sessionId,omitempty"`
	ReceivedAt time.Time `bson:"receivedAt"`
}

type sessionKey struct{}

// WithSession tags ctx with the submitting session id.
func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

func sessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// LogInbox only logs messages. Used when no database is configured.
type LogInbox struct {
	Logger logrus.FieldLogger
}

func (l LogInbox) Submit(ctx context.Context, msg models.ContactMessage) (Receipt, error) {
	r := Receipt{ID: uuid.NewString(), ReceivedAt: time.Now().UTC()}
	l.Logger.WithFields(logrus.Fields{
		"message_id": r.ID,
		"session_id": sessionFrom(ctx),
		"name":       msg.Name,
		"contact":    msg.Contact,
	}).Info("contact message received")
	return r, nil
}

// MongoInbox inserts messages into the contact_messages collection.
type MongoInbox struct {
	db     *mongo.Database
	logger logrus.FieldLogger
}

func NewMongoInbox(db *mongo.Database, logger logrus.FieldLogger) *MongoInbox {
	return &MongoInbox{db: db, logger: logger}
}

func (m *MongoInbox) Submit(ctx context.Context, msg models.ContactMessage) (Receipt, error) {
	rec := record{
		ID:         uuid.NewString(),
		Name:       msg.Name,
		Contact:    msg.Contact,
		Message:    msg.Message,
		SessionID:  sessionFrom(ctx),
		ReceivedAt: time.Now().UTC(),
	}
	if _, err := m.db.Collection(collection).InsertOne(ctx, rec); err != nil {
		return Receipt{}, errors.Wrap(err, "insert contact message")
	}
	m.logger.WithField("message_id", rec.ID).Info("contact message stored")
	return Receipt{ID: rec.ID, ReceivedAt: rec.ReceivedAt}, nil
}
