package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/app/delivery/http/routers"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/drivers/messaging"
	appointmentOptions "doctors-portal-service/internal/app/services/core/appointment_options"
	"doctors-portal-service/internal/app/services/core/auth"
	"doctors-portal-service/internal/app/services/core/bookings"
	"doctors-portal-service/internal/app/services/core/rosters"
	"doctors-portal-service/internal/app/services/core/users"
	"doctors-portal-service/internal/app/services/shared/bookingevents"
	"doctors-portal-service/internal/app/services/shared/jwtmanager"
	"doctors-portal-service/internal/app/services/shared/locker"
	"doctors-portal-service/internal/app/services/shared/ratelimiter"
	redisRepository "doctors-portal-service/internal/app/services/shared/redis"
	"doctors-portal-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redis := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redis,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	db := bootstrap.Database()

	ctx, cancel := context.WithTimeout(context.Background(), constvars.DefaultRequestTimeout)
	defer cancel()

	// Shared
	redisRepo := redisRepository.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepo, log)
	bookingAttemptLimiter := ratelimiter.NewResourceLimiter(redisRepo, log)

	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig.JWT.Secret, log)
	if err != nil {
		return err
	}

	var bookingEventPublisher contracts.BookingEventPublisher
	if bootstrap.RabbitMQ != nil {
		bookingEventPublisher, err = bookingevents.NewBookingEventPublisher(
			bootstrap.RabbitMQ,
			log,
			bootstrap.InternalConfig.App.RabbitMQBookingQueue,
		)
		if err != nil {
			return err
		}
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(db)
	err = userMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		// legacy data with repeated emails must not keep the portal down
		log.Warn("Users email index not created, upserts by email stay best effort",
			zap.Error(err),
		)
	}

	bookingMongoRepository := bookings.NewBookingMongoRepository(db)
	err = bookingMongoRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	appointmentOptionMongoRepository := appointmentOptions.NewAppointmentOptionMongoRepository(db)
	doctorMongoRepository := rosters.NewRosterMongoRepository(db, constvars.MongoCollectionDoctors)
	drugMongoRepository := rosters.NewRosterMongoRepository(db, constvars.MongoCollectionDrugs)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, jwtManager, log)
	userUsecase := users.NewUserUsecase(userMongoRepository, log)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		userMongoRepository,
		lockerService,
		bookingAttemptLimiter,
		bookingEventPublisher,
		bookings.Settings{
			LockTTL:              bootstrap.InternalConfig.App.BookingLockTTL,
			AttemptWindow:        bootstrap.InternalConfig.App.BookingAttemptWindow,
			MaxAttemptsPerWindow: bootstrap.InternalConfig.App.BookingMaxAttempts,
		},
		log,
	)
	appointmentOptionUsecase := appointmentOptions.NewAppointmentOptionUsecase(
		appointmentOptionMongoRepository,
		bookingMongoRepository,
		redisRepo,
		bootstrap.InternalConfig.App.AppointmentOptionsCacheTTL,
		log,
	)
	doctorUsecase := rosters.NewRosterUsecase(doctorMongoRepository, log)
	drugUsecase := rosters.NewRosterUsecase(drugMongoRepository, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, authUsecase, bootstrap.InternalConfig)

	// Controllers
	healthController := controllers.NewHealthController(log, bootstrap.InternalConfig.App.Version, map[string]controllers.HealthCheckFunc{
		"mongodb": func(ctx context.Context) error {
			return bootstrap.MongoDB.Ping(ctx, readpref.Primary())
		},
		"redis": func(ctx context.Context) error {
			return bootstrap.Redis.Ping(ctx).Err()
		},
	})
	appointmentOptionController := controllers.NewAppointmentOptionController(log, appointmentOptionUsecase)
	bookingController := controllers.NewBookingController(log, bookingUsecase)
	authController := controllers.NewAuthController(log, authUsecase)
	userController := controllers.NewUserController(log, userUsecase)
	doctorController := controllers.NewRosterController(log, constvars.ResourceDoctors, doctorUsecase)
	drugController := controllers.NewRosterController(log, constvars.ResourceDrugs, drugUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		healthController,
		appointmentOptionController,
		bookingController,
		authController,
		userController,
		doctorController,
		drugController,
	)
	return nil
}
