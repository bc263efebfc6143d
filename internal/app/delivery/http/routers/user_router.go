package routers

import (
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/delivery/http/middlewares"
	"doctors-portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Get("/", userController.GetUsers)
	router.Post("/", userController.SaveUser)
	router.Get("/admin/{email}", userController.IsAdmin)
	router.Get("/doctor/{email}", userController.IsDoctor)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Put("/admin/{id}", userController.MakeAdmin)
	router.With(middlewares.Authenticate).Put("/doctor/{id}", userController.MakeDoctor)
}
