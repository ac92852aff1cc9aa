package routes

import (
	"net/http"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/handlers"
	"github.com/SSMShehan/serendibgo-v2-sub005/middleware"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Users.RegisterUser)
		api.POST("/login", hb.Users.AuthenticateUser)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.Users.GetUserByID)
		api.PUT("/update/:id", hb.Users.UpdateUser)
		api.DELETE("/delete/:id", hb.Users.DeleteUser)
		api.DELETE("/revoke/:id", hb.Users.RevokeAuthToken)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBooking)
		api.GET("/:id", hb.Bookings.GetBooking)
		api.GET("/reference/:ref", hb.Bookings.GetBookingByReference)
		api.GET("/guest/:guestID", hb.Bookings.ListGuestBookings)
		api.GET("/hotel/:hotelID", hb.Bookings.ListHotelBookings)

		api.POST("/:id/confirm", hb.Bookings.ConfirmBooking)
		api.GET("/:id/cancellation-quote", hb.Bookings.QuoteCancellation)
		api.POST("/:id/cancel", hb.Bookings.CancelBooking)
		api.POST("/:id/payment-intent", hb.Bookings.CreatePaymentIntent)

		// Desk operations are restricted to supplier staff and admins.
		staff := api.Group("")
		staff.Use(middleware.RequireRole(hb.UserRepo, models.RoleStaff, models.RoleHotelOwner, models.RoleAdmin))
		staff.POST("/:id/check-in", hb.Bookings.CheckIn)
		staff.POST("/:id/check-out", hb.Bookings.CheckOut)
		staff.PATCH("/:id/status", hb.Bookings.UpdateStatus)
	}
}

// RegisterHotelRoutes registers hotel and room endpoints.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		// Public search and lookup.
		api.GET("", hb.Hotels.SearchHotels)
		api.GET("/:id", hb.Hotels.GetHotel)
		api.GET("/:id/rooms", hb.Hotels.ListRooms)
		api.GET("/rooms/:roomID/availability", hb.Hotels.RoomAvailability)

		// Listing management requires authentication.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.Hotels.CreateHotel)
		protected.PUT("/:id", hb.Hotels.UpdateHotel)
		protected.DELETE("/:id", hb.Hotels.DeleteHotel)
		protected.POST("/:id/rooms", hb.Hotels.AddRoom)
	}
}

// RegisterTourRoutes registers tour endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.GET("", hb.Tours.SearchTours)
		api.GET("/:id", hb.Tours.GetTour)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.Tours.CreateTour)
		protected.PUT("/:id", hb.Tours.UpdateTour)
		protected.DELETE("/:id", hb.Tours.DeleteTour)
	}
}

// RegisterVehicleRoutes registers vehicle and driver endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.GET("", hb.Vehicles.SearchVehicles)
		api.GET("/drivers", hb.Vehicles.ListAvailableDrivers)
		api.GET("/:id", hb.Vehicles.GetVehicle)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.Vehicles.CreateVehicle)
		protected.PUT("/:id", hb.Vehicles.UpdateVehicle)
		protected.DELETE("/:id", hb.Vehicles.DeleteVehicle)
		protected.POST("/drivers", hb.Vehicles.RegisterDriver)
		protected.POST("/:id/assign-driver", hb.Vehicles.AssignDriver)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRole(hb.UserRepo, models.RoleAdmin))
		api.GET("/users", hb.Users.GetAllUsers)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SerendibGo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
