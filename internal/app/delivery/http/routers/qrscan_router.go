package routers

import (
	"carelink-service/internal/app/delivery/http/middlewares"
	"carelink-service/internal/app/services/core/qrscan"

	"github.com/go-chi/chi/v5"
)

func attachQRScanRoutes(router chi.Router, middlewares *middlewares.Middlewares, scanLimiter *middlewares.ScanRateLimiter, qrScanController *qrscan.QRScanController) {
	router.With(middlewares.Authenticate, middlewares.LimitScanAttempts(scanLimiter)).Post("/qr-scan", qrScanController.ScanPrescriptionQR)
}
