package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	treatmentRepoPkg "doctorsportal/database/repository/treatment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from MongoDB: %v", err)
		}
	}()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	treatmentRepo := treatmentRepoPkg.NewMongoAppointmentOptionRepo(client)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(client)
	userRepo := userRepoPkg.NewMongoUserRepo(client)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(client)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(client)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Options:  treatmentRepo,
		Bookings: bookingRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointments: handlers.NewAppointmentHandler(availabilityService),
		Bookings:     handlers.NewBookingHandler(bookingService),
		Payments:     handlers.NewPaymentHandler(bookingService),
		Users:        handlers.NewUserHandler(userService),
		Doctors:      handlers.NewDoctorHandler(doctorService),
		UserRepo:     userRepo,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	logger.Sugar().Info("main: server stopped gracefully")
}
