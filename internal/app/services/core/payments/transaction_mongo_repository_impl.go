package payments

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/contracts"
	"github.com/Bricklabsai/theralink/internal/app/models"
	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/Bricklabsai/theralink/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionMongoRepository struct {
	Collection *mongo.Collection
}

func NewTransactionMongoRepository(db *mongo.Client, dbName string) contracts.TransactionRepository {
	return &TransactionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTransactions),
	}
}

func (repo *TransactionMongoRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return transaction.ID, nil
}
