package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/config"
	"github.com/SSMShehan/serendibgo-v2-sub005/cron"
	"github.com/SSMShehan/serendibgo-v2-sub005/database"
	bookingRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/booking"
	hotelRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/hotel"
	tourRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/tour"
	userRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/user"
	vehicleRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/vehicle"
	"github.com/SSMShehan/serendibgo-v2-sub005/handlers"
	"github.com/SSMShehan/serendibgo-v2-sub005/routes"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/booking"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/hotel"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/tour"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/user"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/vehicle"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	tourRepo := tourRepoPkg.NewMongoTourRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo, Logger: logger}
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Payments:  booking.NewStripePaymentProcessor(logger),
		Reminders: cron.NewAsynqReminderScheduler(logger),
		Logger:    logger,
	}
	hotelService := &hotel.DefaultHotelService{Repo: hotelRepo, Bookings: bookingRepo, Logger: logger}
	tourService := &tour.DefaultTourService{Repo: tourRepo, Logger: logger}
	vehicleService := &vehicle.DefaultVehicleService{Repo: vehicleRepo, Logger: logger}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Users:    handlers.NewUserHandler(userService, logger),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Hotels:   handlers.NewHotelHandler(hotelService, logger),
		Tours:    handlers.NewTourHandler(tourService, logger),
		Vehicles: handlers.NewVehicleHandler(vehicleService, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: check-in reminders and the end-of-stay sweep.
	cron.InitBookingWorker(bookingService, logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Warnf("main: mongodb disconnect failed: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
