package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vistamar/pousada-api/internal/core/domain"
)

const bookingCollection = "bookings"

// BookingRepository persists bookings in MongoDB, one document per
// reservation with the generated uuid as _id.
type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingCollection)}
}

type bookingDoc struct {
	ID               string          `bson:"_id"`
	OwnerAccountID   string          `bson:"owner_account_id"`
	StartDate        string          `bson:"start_date"`
	EndDate          string          `bson:"end_date"`
	Description      string          `bson:"description"`
	OptionSelections map[string]bool `bson:"option_selections"`
	CreatedAt        int64           `bson:"created_at"`
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if _, err := r.coll.InsertOne(ctx, toBookingDoc(booking)); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var doc bookingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return toBooking(doc), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerAccountID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"owner_account_id": ownerAccountID})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	// Insertion order keeps listings stable for the calendar view.
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []*domain.Booking
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode booking: %w", err)
		}
		bookings = append(bookings, toBooking(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": booking.ID}, toBookingDoc(booking))
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func toBookingDoc(b *domain.Booking) bookingDoc {
	return bookingDoc{
		ID:               b.ID,
		OwnerAccountID:   b.OwnerAccountID,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		Description:      b.Description,
		OptionSelections: b.OptionSelections,
		CreatedAt:        b.CreatedAt.Unix(),
	}
}

func toBooking(doc bookingDoc) *domain.Booking {
	return &domain.Booking{
		ID:               doc.ID,
		OwnerAccountID:   doc.OwnerAccountID,
		StartDate:        doc.StartDate,
		EndDate:          doc.EndDate,
		Description:      doc.Description,
		OptionSelections: doc.OptionSelections,
		CreatedAt:        unixToTime(doc.CreatedAt),
	}
}
