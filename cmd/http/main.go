package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bricklabsai/theralink/internal/app/config"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/controllers"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/middlewares"
	"github.com/Bricklabsai/theralink/internal/app/delivery/http/routers"
	"github.com/Bricklabsai/theralink/internal/app/drivers/database"
	"github.com/Bricklabsai/theralink/internal/app/drivers/logger"
	"github.com/Bricklabsai/theralink/internal/app/drivers/messaging"
	"github.com/Bricklabsai/theralink/internal/app/drivers/storage"
	"github.com/Bricklabsai/theralink/internal/app/services/core/appointments"
	"github.com/Bricklabsai/theralink/internal/app/services/core/auth"
	"github.com/Bricklabsai/theralink/internal/app/services/core/availability"
	"github.com/Bricklabsai/theralink/internal/app/services/core/booking_requests"
	"github.com/Bricklabsai/theralink/internal/app/services/core/dashboards"
	"github.com/Bricklabsai/theralink/internal/app/services/core/messages"
	"github.com/Bricklabsai/theralink/internal/app/services/core/notes"
	"github.com/Bricklabsai/theralink/internal/app/services/core/payments"
	"github.com/Bricklabsai/theralink/internal/app/services/core/profiles"
	"github.com/Bricklabsai/theralink/internal/app/services/core/session"
	"github.com/Bricklabsai/theralink/internal/app/services/core/therapists"
	"github.com/Bricklabsai/theralink/internal/app/services/core/videocalls"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/events"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/locker"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/rbac"
	"github.com/Bricklabsai/theralink/internal/app/services/shared/redis"
	sharedStorage "github.com/Bricklabsai/theralink/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLogger := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		AccessLogger:   accessLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig.Minio.PublicBaseUrl)
	eventPublisher, err := events.NewRabbitMQPublisher(
		bootstrap.RabbitMQ,
		log,
		bootstrap.InternalConfig.RabbitMQ.Exchange,
		bootstrap.InternalConfig.RabbitMQ.EventsQueue,
	)
	if err != nil {
		return err
	}
	resolver := availability.NewResolver(location)

	// Repositories
	profileRepository := profiles.NewProfileMongoRepository(bootstrap.MongoDB, dbName)
	therapistRepository := therapists.NewTherapistMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	bookingRequestRepository := booking_requests.NewBookingRequestMongoRepository(bootstrap.MongoDB, dbName)
	noteRepository := notes.NewNoteMongoRepository(bootstrap.MongoDB, dbName)
	messageRepository := messages.NewMessageMongoRepository(bootstrap.MongoDB, dbName)
	transactionRepository := payments.NewTransactionMongoRepository(bootstrap.MongoDB, dbName)
	statsRepository := dashboards.NewStatsMongoRepository(bootstrap.MongoDB, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(profileRepository, therapistRepository, sessionService, bootstrap.InternalConfig, log)
	therapistUsecase := therapists.NewTherapistUsecase(
		therapistRepository,
		profileRepository,
		sessionService,
		minioStorage,
		resolver,
		bootstrap.InternalConfig,
		log,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		therapistRepository,
		sessionService,
		eventPublisher,
		location,
		log,
	)
	bookingRequestUsecase := booking_requests.NewBookingRequestUsecase(bookingRequestRepository, profileRepository, sessionService, log)
	dashboardUsecase := dashboards.NewDashboardUsecase(statsRepository, sessionService, bootstrap.InternalConfig.App.DashboardPartialFailure, log)
	messageUsecase := messages.NewMessageUsecase(messageRepository, sessionService, log)
	noteUsecase := notes.NewNoteUsecase(noteRepository, bookingRequestRepository, sessionService, log)
	paymentUsecase := payments.NewPaymentUsecase(transactionRepository, sessionService, lockerService, eventPublisher, bootstrap.InternalConfig, log)
	videoRoomUsecase := videocalls.NewVideoRoomUsecase(redisRepository, sessionService, eventPublisher, bootstrap.InternalConfig, log)

	// Delivery
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(log, sessionService, enforcer, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.AccessLogger,
		middlewares,
		controllers.NewAuthController(log, authUsecase),
		controllers.NewTherapistController(log, therapistUsecase),
		controllers.NewAppointmentController(log, appointmentUsecase),
		controllers.NewBookingRequestController(log, bookingRequestUsecase),
		controllers.NewDashboardController(log, dashboardUsecase),
		controllers.NewMessageController(log, messageUsecase),
		controllers.NewNoteController(log, noteUsecase),
		controllers.NewPaymentController(log, paymentUsecase),
		controllers.NewVideoRoomController(log, videoRoomUsecase),
	)

	return nil
}
