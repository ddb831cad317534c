package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitbook-service/internal/app/config"
	"fitbook-service/internal/app/delivery/http/controllers"
	"fitbook-service/internal/app/delivery/http/middlewares"
	"fitbook-service/internal/app/delivery/http/routers"
	"fitbook-service/internal/app/drivers/database"
	"fitbook-service/internal/app/drivers/logger"
	"fitbook-service/internal/app/drivers/messaging"
	"fitbook-service/internal/app/services/core/bookings"
	"fitbook-service/internal/app/services/core/consultants"
	"fitbook-service/internal/app/services/shared/eventqueue"
	"fitbook-service/internal/app/services/shared/locker"
	"fitbook-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		logrus.Fatalf("Failed to initialize booking event queue: %v", err)
	}

	// Middlewares
	httpMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Consultant
	consultantMongoRepository := consultants.NewConsultantMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	consultantUsecase := consultants.NewConsultantUsecase(consultantMongoRepository, bootstrap.Logger)
	consultantController := controllers.NewConsultantController(
		bootstrap.Logger,
		consultantUsecase,
		bootstrap.InternalConfig.App.RequestTimeoutInSeconds,
	)

	// Booking
	bookingMongoRepository, err := bookings.NewBookingMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize booking repository: %v", err)
	}
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		consultantMongoRepository,
		lockerService,
		eventPublisher,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(
		bootstrap.Logger,
		bookingUsecase,
		bootstrap.InternalConfig.App.RequestTimeoutInSeconds,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		bookingController,
		consultantController,
	)
}
