package booking_requests

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingRequestMongoRepository(db *mongo.Client, dbName string) contracts.BookingRequestRepository {
	return &BookingRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookingRequests),
	}
}

func (repo *BookingRequestMongoRepository) CreateBookingRequest(ctx context.Context, bookingRequest *models.BookingRequest) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, bookingRequest)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return bookingRequest.ID, nil
}

func (repo *BookingRequestMongoRepository) FindByID(ctx context.Context, bookingRequestID string) (*models.BookingRequest, error) {
	var bookingRequest models.BookingRequest
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingRequestID}).Decode(&bookingRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bookingRequest, nil
}

func (repo *BookingRequestMongoRepository) FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requested_time", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookingRequests := []models.BookingRequest{}
	if err := cursor.All(ctx, &bookingRequests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookingRequests, nil
}

func (repo *BookingRequestMongoRepository) FindDistinctClientIDs(ctx context.Context, therapistID string) ([]string, error) {
	values, err := repo.Collection.Distinct(ctx, "client_id", bson.M{"therapist_id": therapistID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	clientIDs := make([]string, 0, len(values))
	for _, value := range values {
		if clientID, ok := value.(string); ok && clientID != "" {
			clientIDs = append(clientIDs, clientID)
		}
	}
	return clientIDs, nil
}
