package http

import (
	"time"

	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *httpMetrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        newHTTPMetrics(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
