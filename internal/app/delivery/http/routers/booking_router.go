package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Get("/", bookingController.ListBookings)
	router.With(middlewares.Authenticate).Get("/{id}", bookingController.GetBookingByID)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Delete("/{id}", bookingController.DeleteBookingByID)
}
