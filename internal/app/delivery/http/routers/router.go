package routers

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/appointments"
	"carelink-service/internal/app/services/core/audit"
	"carelink-service/internal/app/services/core/auth"
	"carelink-service/internal/app/services/core/qrscan"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	appointmentController *appointments.AppointmentController,
	qrScanController *qrscan.QRScanController,
	auditController *audit.AuditController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	scanLimiter := newScanLimiter(internalConfig)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachQRScanRoutes(r, middlewares, scanLimiter, qrScanController)
			})

			r.Route("/audit-logs", func(r chi.Router) {
				attachAuditRoutes(r, middlewares, auditController)
			})
		})
	})
}

func newScanLimiter(internalConfig *config.InternalConfig) *middlewares.ScanRateLimiter {
	return middlewares.NewScanRateLimiter(
		internalConfig.Scan.MaxAttemptsPerMinute,
		time.Minute,
		time.Duration(internalConfig.Scan.BlockTimeInMinute)*time.Minute,
	)
}
