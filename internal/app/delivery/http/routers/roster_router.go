package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRosterRoutes(router chi.Router, middlewares *middlewares.Middlewares, rosterController *controllers.RosterController) {
	router.Get("/", rosterController.FindAll)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Post("/", rosterController.Create)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Delete("/{id}", rosterController.DeleteByID)
}
