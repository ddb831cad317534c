package bookings

import (
	"context"
	"time"

	"fitbook-service/internal/app/contracts"
	"fitbook-service/internal/app/models"
	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type bookingMongoRepository struct {
	bookings *mongo.Collection
	claims   *mongo.Collection
	log      *zap.Logger
}

// NewBookingMongoRepository wires the bookings and slot-claims collections and
// makes sure the unique claim index exists. The index is what turns two
// concurrent bookings of the same slot into exactly one winner.
func NewBookingMongoRepository(client *mongo.Client, dbName string, logger *zap.Logger) (contracts.BookingRepository, error) {
	db := client.Database(dbName)
	repo := &bookingMongoRepository{
		bookings: db.Collection(constvars.MongoCollectionBookings),
		claims:   db.Collection(constvars.MongoCollectionClaims),
		log:      logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.claims.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "consultant_id", Value: 1},
				{Key: "start_at", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "booking_id", Value: 1}},
		},
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// bookingDocument is the persisted shape. Prices are stored as Decimal128 so
// monetary values survive the round trip without float drift.
type bookingDocument struct {
	ID               string               `bson:"_id"`
	ConsultantID     string               `bson:"consultant_id"`
	StartAt          time.Time            `bson:"start_at"`
	EndAt            time.Time            `bson:"end_at"`
	Title            string               `bson:"title"`
	Notes            string               `bson:"notes,omitempty"`
	Mode             string               `bson:"mode"`
	Price            primitive.Decimal128 `bson:"price"`
	Location         string               `bson:"location,omitempty"`
	Status           string               `bson:"status"`
	models.TimeModel `bson:",inline"`
}

func toBookingDocument(booking *models.Booking) (*bookingDocument, error) {
	price, err := primitive.ParseDecimal128(booking.Price.String())
	if err != nil {
		return nil, err
	}
	return &bookingDocument{
		ID:           booking.ID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt,
		EndAt:        booking.EndAt,
		Title:        booking.Title,
		Notes:        booking.Notes,
		Mode:         booking.Mode,
		Price:        price,
		Location:     booking.Location,
		Status:       string(booking.Status),
		TimeModel:    booking.TimeModel,
	}, nil
}

func toBookingModel(doc *bookingDocument) (*models.Booking, error) {
	price, err := decimal.NewFromString(doc.Price.String())
	if err != nil {
		return nil, err
	}
	return &models.Booking{
		ID:           doc.ID,
		ConsultantID: doc.ConsultantID,
		StartAt:      doc.StartAt,
		EndAt:        doc.EndAt,
		Title:        doc.Title,
		Notes:        doc.Notes,
		Mode:         doc.Mode,
		Price:        price,
		Location:     doc.Location,
		Status:       models.BookingStatus(doc.Status),
		TimeModel:    doc.TimeModel,
	}, nil
}

// Insert writes the slot claim first, then the booking document. The claim
// insert is the atomic conflict check: a duplicate key means someone else
// holds the slot and the caller gets a conflict error.
func (r *bookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) error {
	doc, err := toBookingDocument(booking)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	claim := models.SlotClaim{
		BookingID:    booking.ID,
		ConsultantID: booking.ConsultantID,
		StartAt:      booking.StartAt,
	}
	if _, err := r.claims.InsertOne(ctx, claim); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrBookingSlotTaken(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}

	if _, err := r.bookings.InsertOne(ctx, doc); err != nil {
		// Free the slot again so a failed write does not block it forever.
		if _, delErr := r.claims.DeleteOne(ctx, bson.M{"booking_id": booking.ID}); delErr != nil {
			r.log.Error("bookingMongoRepository.Insert failed to roll back slot claim",
				zap.String(constvars.LoggingBookingIDKey, booking.ID),
				zap.Error(delErr),
			)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *bookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var doc bookingDocument
	err := r.bookings.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrBookingNotFound(err)
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	booking, err := toBookingModel(&doc)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return booking, nil
}

func (r *bookingMongoRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	update := bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": time.Now(),
	}}
	result, err := r.bookings.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrBookingNotFound(mongo.ErrNoDocuments)
	}
	return nil
}

// ReleaseClaim deletes the slot claim belonging to a booking, which makes the
// slot bookable again. Cancelling an already released booking is a no-op.
func (r *bookingMongoRepository) ReleaseClaim(ctx context.Context, bookingID string) error {
	if _, err := r.claims.DeleteOne(ctx, bson.M{"booking_id": bookingID}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
