package contracts

import (
	"context"

	"github.com/Bricklabsai/theralink/internal/app/models"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error)
}
