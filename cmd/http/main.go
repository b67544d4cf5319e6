package main

import (
	"careplan-service/internal/app/config"
	"careplan-service/internal/app/delivery/http/controllers"
	"careplan-service/internal/app/delivery/http/middlewares"
	"careplan-service/internal/app/delivery/http/routers"
	"careplan-service/internal/app/drivers/database"
	"careplan-service/internal/app/drivers/logger"
	"careplan-service/internal/app/drivers/messaging"
	"careplan-service/internal/app/drivers/storage"
	"careplan-service/internal/app/services/careplans"
	"careplan-service/internal/app/services/shared/authgate"
	"careplan-service/internal/app/services/shared/events"
	"careplan-service/internal/app/services/shared/ledger"
	"careplan-service/internal/app/services/shared/notes"
	"careplan-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	careLedger := ledger.NewMongoLedger(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	noteStorage := notes.NewMinioNoteStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	eventPublisher, err := events.NewRabbitMQEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.ZapLogger,
		bootstrap.InternalConfig.App.EventQueueName,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Error initializing event publisher: %v", err)
	}

	authorizationGate := authgate.NewJWTAuthorizationGate(redisRepository, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Care plans
	carePlanUsecase := careplans.NewCarePlanUsecase(
		careLedger,
		authorizationGate,
		eventPublisher,
		noteStorage,
		bootstrap.ZapLogger,
	)
	carePlanController := controllers.NewCarePlanController(bootstrap.ZapLogger, carePlanUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, carePlanController)
}
