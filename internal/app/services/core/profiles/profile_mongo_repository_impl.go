package profiles

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

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

func (repo *ProfileMongoRepository) CreateProfile(ctx context.Context, profile *models.Profile) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return profile.ID, nil
}

func (repo *ProfileMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *ProfileMongoRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	return repo.findOne(ctx, bson.M{"_id": profileID})
}

func (repo *ProfileMongoRepository) FindByIDs(ctx context.Context, profileIDs []string) ([]models.Profile, error) {
	if len(profileIDs) == 0 {
		return []models.Profile{}, nil
	}

	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := repo.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": profileIDs}}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	profiles := []models.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return profiles, nil
}

func (repo *ProfileMongoRepository) UpdateProfileImageURL(ctx context.Context, profileID, imageURL string) error {
	filter := bson.M{"_id": profileID}
	update := bson.M{"$set": bson.M{
		"profile_image_url": imageURL,
		"updated_at":        time.Now(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}

func (repo *ProfileMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var profile models.Profile
	err := repo.Collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
