package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentOptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentOptionController *controllers.AppointmentOptionController) {
	router.Get("/", appointmentOptionController.GetAppointmentOptions)
}

func attachAppointmentSpecialtyRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentOptionController *controllers.AppointmentOptionController) {
	router.Get("/", appointmentOptionController.GetAppointmentSpecialties)
}
