package main

import (
	"context"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/drivers/database"
	"github.com/Bricklabsai/theralink/internal/app/drivers/logger"
	"github.com/Bricklabsai/theralink/internal/migration"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client := database.NewMongoDB(driverConfig)
	defer client.Disconnect(ctx)

	err := migration.Run(ctx, client.Database(driverConfig.MongoDB.DbName), log)
	if err != nil {
		log.Fatal("Error executing migration", zap.Error(err))
	}
	log.Info("Migration finished")
}
