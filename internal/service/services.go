package service

import (
	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/store"
	"github.com/MKhiriev/go-product-keeper/internal/validators"
	"github.com/MKhiriev/go-product-keeper/models"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(cfg.Auth, logger)

	return &Services{
		AuthService:    authService,
		ProductService: NewProductService(storages.ProductRepository, authService, validators.NewProductValidator(), logger),
		AppInfoService: appInfoService,
	}, nil
}
