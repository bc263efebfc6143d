package routers

import (
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	appointmentOptionController *controllers.AppointmentOptionController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	doctorController *controllers.RosterController,
	drugController *controllers.RosterController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	if bodyLimit > 0 {
		router.Use(middleware.RequestSize(bodyLimit))
	}

	router.Get("/", healthController.Root)
	router.Get("/health", healthController.Health)

	router.Route("/appointmentOptions", func(r chi.Router) {
		attachAppointmentOptionRoutes(r, middlewares, appointmentOptionController)
	})

	router.Route("/appointmentSpecialty", func(r chi.Router) {
		attachAppointmentSpecialtyRoutes(r, middlewares, appointmentOptionController)
	})

	router.Route("/bookings", func(r chi.Router) {
		attachBookingRoutes(r, middlewares, bookingController)
	})

	router.Route("/jwt", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
	})

	router.Route("/users", func(r chi.Router) {
		attachUserRoutes(r, middlewares, userController)
	})

	router.Route("/doctors", func(r chi.Router) {
		attachRosterRoutes(r, middlewares, doctorController)
	})

	router.Route("/drugs", func(r chi.Router) {
		attachRosterRoutes(r, middlewares, drugController)
	})
}
