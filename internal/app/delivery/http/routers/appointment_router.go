package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Get("/", appointmentController.FindAll)
}
