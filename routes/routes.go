package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public availability endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointment-options", hb.Appointments.GetAppointmentOptions)
	r.GET("/v2/appointment-options", hb.Appointments.GetAppointmentOptionsV2)
	r.GET("/appointment-specialty", hb.Appointments.GetSpecialties)
}

// RegisterBookingRoutes registers booking and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", middleware.VerifyJWT(), hb.Bookings.GetBookings)
	r.GET("/bookings/:id", hb.Bookings.GetBookingByID)
	r.POST("/bookings", hb.Bookings.CreateBooking)

	r.POST("/create-payment-intent", hb.Payments.CreatePaymentIntent)
	r.POST("/payments", hb.Payments.RecordPayment)
}

// RegisterUserRoutes registers user management and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.Users.CreateUser)
	r.GET("/jwt", hb.Users.IssueJWT)
	r.GET("/users", hb.Users.GetUsers)
	r.GET("/users/admin/:email", hb.Users.CheckAdmin)
	r.PUT("/users/admin/:id", middleware.VerifyJWT(), middleware.VerifyAdmin(hb.UserRepo), hb.Users.PromoteAdmin)
	r.DELETE("/users/:id", hb.Users.DeleteUser)
}

// RegisterDoctorRoutes registers the admin-only doctor catalog endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	doctors.Use(middleware.VerifyJWT(), middleware.VerifyAdmin(hb.UserRepo))
	{
		doctors.GET("", hb.Doctors.GetDoctors)
		doctors.POST("", hb.Doctors.CreateDoctor)
		doctors.DELETE("/:id", hb.Doctors.DeleteDoctor)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterHealthRoute(r)
}
