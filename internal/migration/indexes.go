package migration

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionIndexes groups the indexes a single collection needs.
type CollectionIndexes struct {
	Collection string
	Models     []mongo.IndexModel
}

// Indexes lists every index the service relies on for lookups and uniqueness.
func Indexes() []CollectionIndexes {
	return []CollectionIndexes{
		{
			Collection: constvars.MongoCollectionProfiles,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("profiles_email_unique"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionTherapists,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("therapists_user_id_unique"),
				},
				{
					Keys:    bson.D{{Key: "application_status", Value: 1}},
					Options: options.Index().SetName("therapists_application_status"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionAppointments,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "start_time", Value: 1}},
					Options: options.Index().SetName("appointments_client_start"),
				},
				{
					Keys:    bson.D{{Key: "therapist_id", Value: 1}, {Key: "start_time", Value: 1}},
					Options: options.Index().SetName("appointments_therapist_start"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionBookingRequests,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "therapist_id", Value: 1}, {Key: "requested_date", Value: 1}, {Key: "requested_time", Value: 1}},
					Options: options.Index().SetName("booking_requests_therapist_slot"),
				},
				{
					Keys:    bson.D{{Key: "client_id", Value: 1}},
					Options: options.Index().SetName("booking_requests_client"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionBookingNotes,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "therapist_id", Value: 1}, {Key: "created_at", Value: -1}},
					Options: options.Index().SetName("booking_notes_therapist_created"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionMessages,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}, {Key: "created_at", Value: 1}},
					Options: options.Index().SetName("messages_thread"),
				},
			},
		},
		{
			Collection: constvars.MongoCollectionTransactions,
			Models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "reference", Value: 1}},
					Options: options.Index().SetName("transactions_reference"),
				},
			},
		},
	}
}

// Run creates the indexes. CreateMany is idempotent for identical definitions.
func Run(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	for _, group := range Indexes() {
		collection := db.Collection(group.Collection)
		models := group.Models
		err := utils.LogOperation(log, "create_indexes:"+group.Collection, "", func() error {
			_, err := collection.Indexes().CreateMany(ctx, models)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}
