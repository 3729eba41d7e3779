package therapists

import (
	"context"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TherapistMongoRepository struct {
	Collection *mongo.Collection
}

func NewTherapistMongoRepository(db *mongo.Client, dbName string) contracts.TherapistRepository {
	return &TherapistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTherapists),
	}
}

func (repo *TherapistMongoRepository) CreateTherapist(ctx context.Context, therapist *models.Therapist) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, therapist)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return therapist.ID, nil
}

func (repo *TherapistMongoRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	return repo.findOne(ctx, bson.M{"_id": therapistID})
}

func (repo *TherapistMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Therapist, error) {
	return repo.findOne(ctx, bson.M{"user_id": userID})
}

func (repo *TherapistMongoRepository) FindAll(ctx context.Context) ([]models.Therapist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	therapists := []models.Therapist{}
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return therapists, nil
}

func (repo *TherapistMongoRepository) UpdateAvailability(ctx context.Context, therapistID string, availability interface{}) error {
	update := bson.M{"$set": bson.M{
		"availability": availability,
		"updated_at":   time.Now(),
	}}
	return repo.updateOne(ctx, therapistID, update)
}

func (repo *TherapistMongoRepository) UpdateVerification(ctx context.Context, therapistID string, isVerified bool, applicationStatus string) error {
	update := bson.M{"$set": bson.M{
		"is_verified":        isVerified,
		"application_status": applicationStatus,
		"updated_at":         time.Now(),
	}}
	return repo.updateOne(ctx, therapistID, update)
}

func (repo *TherapistMongoRepository) updateOne(ctx context.Context, therapistID string, update bson.M) error {
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": therapistID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrTherapistNotExist(nil)
	}
	return nil
}

func (repo *TherapistMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Therapist, error) {
	var therapist models.Therapist
	err := repo.Collection.FindOne(ctx, filter).Decode(&therapist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &therapist, nil
}
