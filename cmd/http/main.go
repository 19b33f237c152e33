package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/delivery/http/routers"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/app/drivers/messaging"
	"carelink-service/internal/app/drivers/storage"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/app/services/core/audit"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/prescriptions"
	"carelink-service/internal/app/services/core/qrscan"
	"carelink-service/internal/app/services/core/session"
	"carelink-service/internal/app/services/core/users"
	"carelink-service/internal/app/services/shared/auditqueue"
	redisrepo "carelink-service/internal/app/services/shared/redis"
	sharedstorage "carelink-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Redis
	redisRepository := redisrepo.NewRedisRepository(redisClient)

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, internalConfig, zapLogger)
	authController := auth.NewAuthController(zapLogger, authUsecase)

	// Appointment
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentMongoRepository, zapLogger)
	appointmentController := appointments.NewAppointmentController(zapLogger, appointmentUsecase)

	// Audit
	auditQueueService, err := auditqueue.NewService(rabbitMQ, zapLogger, driverConfig.RabbitMQ.AuditQueue)
	if err != nil {
		log.Fatalf("Failed to initialize audit queue: %v", err)
	}
	auditLogMongoRepository := audit.NewAuditLogMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	auditService := audit.NewAuditService(auditLogMongoRepository, auditQueueService, zapLogger)
	auditUsecase := audit.NewAuditUsecase(auditLogMongoRepository, zapLogger)
	auditController := audit.NewAuditController(zapLogger, auditUsecase)

	// Prescription
	minioStorage := sharedstorage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	medicationMongoRepository := prescriptions.NewMedicationMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	prescriptionResolver := prescriptions.NewPrescriptionResolver(prescriptionMongoRepository, medicationMongoRepository, minioStorage, zapLogger)

	// QR scan
	qrScanUsecase := qrscan.NewQRScanUsecase(appointmentMongoRepository, prescriptionResolver, auditService, zapLogger)
	qrScanController := qrscan.NewQRScanController(zapLogger, qrScanUsecase)

	routers.SetupRoutes(chiRouter, internalConfig, middlewareInstance, authController, appointmentController, qrScanController, auditController)

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

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while closing application dependencies: %v", err)
	}

	log.Println("Server exiting")
}
