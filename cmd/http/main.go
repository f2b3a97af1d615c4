package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labclinics-service/internal/app/config"
	"labclinics-service/internal/app/delivery/http/middlewares"
	"labclinics-service/internal/app/delivery/http/routers"
	"labclinics-service/internal/app/drivers/database"
	"labclinics-service/internal/app/drivers/logger"
	"labclinics-service/internal/app/drivers/messaging"
	"labclinics-service/internal/app/drivers/storage"
	"labclinics-service/internal/app/services/core/auth"
	"labclinics-service/internal/app/services/core/directory"
	"labclinics-service/internal/app/services/core/doctors"
	"labclinics-service/internal/app/services/shared/eventqueue"
	redisRepo "labclinics-service/internal/app/services/shared/redis"
	"labclinics-service/internal/app/services/shared/session"
	minioStorage "labclinics-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))

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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error while closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	db := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Shared
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	eventPublisher, err := eventqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up event queue", zap.Error(err))
	}

	// Middlewares
	httpMiddlewares := middlewares.New(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	heartbeatInterval := time.Duration(bootstrap.InternalConfig.App.StreamHeartbeatInSeconds) * time.Second
	snapshotHub := directory.NewSnapshotHub()

	// Doctors
	doctorRepository := doctors.NewDoctorMongoRepository(db, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(
		bootstrap.Logger,
		doctorRepository,
		objectStorage,
		eventPublisher,
		bootstrap.DriverConfig.Minio.BucketName,
	)
	doctorController := doctors.NewDoctorController(
		bootstrap.Logger,
		doctorUsecase,
		snapshotHub,
		heartbeatInterval,
		int64(bootstrap.InternalConfig.App.PhotoMaxUploadSizeInMB),
	)

	doctorWatcher := doctors.NewDoctorWatcher(bootstrap.Logger, doctorRepository, snapshotHub)
	if err := doctorWatcher.Start(); err != nil {
		bootstrap.Logger.Fatal("Failed to start doctors watcher", zap.Error(err))
	}
	bootstrap.WatcherStop = doctorWatcher.Stop

	// Directory
	directoryUsecase := directory.NewDirectoryUsecase(doctorRepository)
	directoryController := directory.NewDirectoryController(
		bootstrap.Logger,
		directoryUsecase,
		snapshotHub,
		heartbeatInterval,
	)

	// Auth
	userRepository := auth.NewUserMongoRepository(db, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		authController,
		doctorController,
		directoryController,
	)
}
