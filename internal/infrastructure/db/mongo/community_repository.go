package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/synchome/apartment-system/internal/core/domain"
)

const (
	collectionEvents  = "events"
	collectionWashing = "washing"
	collectionTrash   = "trash"
)

// CommunityRepository spans the small community collections: events and
// washing bookings.
type CommunityRepository struct {
	events  *mongo.Collection
	washing *mongo.Collection
}

func NewCommunityRepository(db *mongo.Database) *CommunityRepository {
	return &CommunityRepository{
		events:  db.Collection(collectionEvents),
		washing: db.Collection(collectionWashing),
	}
}

type eventDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	domain.CommunityEvent `bson:",inline"`
}

type bookingDoc struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	domain.WashingBooking `bson:",inline"`
}

func (r *CommunityRepository) FindAllEvents(ctx context.Context) ([]domain.CommunityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.events.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []domain.CommunityEvent
	for cur.Next(ctx) {
		var d eventDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		ev := d.CommunityEvent
		ev.ID = d.ID.Hex()
		events = append(events, ev)
	}
	return events, cur.Err()
}

func (r *CommunityRepository) CreateBooking(ctx context.Context, b *domain.WashingBooking) (*domain.WashingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.washing.InsertOne(ctx, bookingDoc{WashingBooking: *b})
	if err != nil {
		return nil, err
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CommunityRepository) FindBookingsByEmail(ctx context.Context, email string) ([]domain.WashingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.washing.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []domain.WashingBooking
	for cur.Next(ctx) {
		var d bookingDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		b := d.WashingBooking
		b.ID = d.ID.Hex()
		bookings = append(bookings, b)
	}
	return bookings, cur.Err()
}

// TrashRepository archives opaque payloads of deleted documents.
type TrashRepository struct {
	col *mongo.Collection
}

func NewTrashRepository(db *mongo.Database) *TrashRepository {
	return &TrashRepository{col: db.Collection(collectionTrash)}
}

func (r *TrashRepository) Archive(ctx context.Context, payload map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{}
	for k, v := range payload {
		doc[k] = v
	}
	doc["archived_at"] = time.Now().UTC()

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
