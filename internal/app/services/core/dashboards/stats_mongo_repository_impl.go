package dashboards

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsMongoRepository struct {
	Database *mongo.Database
}

func NewStatsMongoRepository(db *mongo.Client, dbName string) contracts.StatsRepository {
	return &StatsMongoRepository{
		Database: db.Database(dbName),
	}
}

func (repo *StatsMongoRepository) Count(ctx context.Context, collection string, filter map[string]interface{}) (int64, error) {
	count, err := repo.Database.Collection(collection).CountDocuments(ctx, matchFilter(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (repo *StatsMongoRepository) Sum(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error) {
	return repo.groupValue(ctx, collection, "$sum", field, filter)
}

// Average is 0 when no document matches.
func (repo *StatsMongoRepository) Average(ctx context.Context, collection, field string, filter map[string]interface{}) (float64, error) {
	return repo.groupValue(ctx, collection, "$avg", field, filter)
}

func (repo *StatsMongoRepository) CountDistinct(ctx context.Context, collection, field string, filter map[string]interface{}) (int64, error) {
	values, err := repo.Database.Collection(collection).Distinct(ctx, field, matchFilter(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregateDocuments(err)
	}
	return int64(len(values)), nil
}

func (repo *StatsMongoRepository) groupValue(ctx context.Context, collection, operator, field string, filter map[string]interface{}) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: matchFilter(filter)}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"value": bson.M{operator: "$" + field},
		}}},
	}

	cursor, err := repo.Database.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregateDocuments(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Value float64 `bson:"value"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Value, nil
}

func matchFilter(filter map[string]interface{}) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}
