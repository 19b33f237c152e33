package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/audit"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, auditController *audit.AuditController) {
	router.With(middlewares.RequireSuperadminAPIKey).Get("/", auditController.FindAll)
}
