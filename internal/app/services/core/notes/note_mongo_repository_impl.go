package notes

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

type NoteMongoRepository struct {
	Collection *mongo.Collection
}

func NewNoteMongoRepository(db *mongo.Client, dbName string) contracts.NoteRepository {
	return &NoteMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookingNotes),
	}
}

func (repo *NoteMongoRepository) CreateNote(ctx context.Context, note *models.BookingNote) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, note)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return note.ID, nil
}

func (repo *NoteMongoRepository) FindByTherapistID(ctx context.Context, therapistID string) ([]models.BookingNote, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"therapist_id": therapistID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notes := []models.BookingNote{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notes, nil
}

func (repo *NoteMongoRepository) FindByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (*models.BookingNote, error) {
	var note models.BookingNote
	err := repo.Collection.FindOne(ctx, bson.M{"_id": noteID, "therapist_id": therapistID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &note, nil
}

func (repo *NoteMongoRepository) UpdateNote(ctx context.Context, note *models.BookingNote) error {
	filter := bson.M{"_id": note.ID, "therapist_id": note.TherapistID}
	update := bson.M{"$set": bson.M{
		"title":      note.Title,
		"content":    note.Content,
		"updated_at": note.UpdatedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNoteNotExist(nil)
	}
	return nil
}

func (repo *NoteMongoRepository) DeleteByIDAndTherapistID(ctx context.Context, noteID, therapistID string) (bool, error) {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": noteID, "therapist_id": therapistID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
