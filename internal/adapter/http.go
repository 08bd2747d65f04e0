package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-product-keeper/internal/config"
	"github.com/MKhiriev/go-product-keeper/internal/logger"
	"github.com/MKhiriev/go-product-keeper/internal/utils"
	"github.com/MKhiriev/go-product-keeper/models"
)

const (
	productsPath = "/products"
	productPath  = "/products/{id}"
	versionPath  = "/version"
)

type httpProductAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPProductAdapter constructs the HTTP implementation of
// [ProductAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http. cfg.Token, if set, is used for mutating requests.
func NewHTTPProductAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ProductAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpProductAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpProductAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpProductAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// List implements [ProductAdapter] with GET /products.
func (h *httpProductAdapter) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&products).
		Get(productsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return products, nil
}

// Get implements [ProductAdapter] with GET /products/{id}.
func (h *httpProductAdapter) Get(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&product).
		Get(productPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// Create implements [ProductAdapter] with POST /products.
func (h *httpProductAdapter) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetBody(input).
		SetResult(&product).
		Post(productsPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	h.logger.Debug().Int64("id", product.ID).Msg("product created")
	return product, nil
}

// Update implements [ProductAdapter] with PATCH /products/{id}.
func (h *httpProductAdapter) Update(ctx context.Context, id int64, input models.ProductInput) (models.Product, error) {
	var product models.Product

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", utils.ContentTypeJSON).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(input).
		SetResult(&product).
		Patch(productPath)
	if err != nil {
		return models.Product{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// Delete implements [ProductAdapter] with DELETE /products/{id}.
func (h *httpProductAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(productPath)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ProductAdapter] with GET /version.
func (h *httpProductAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(versionPath)
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func (h *httpProductAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerScheme+token)
	}
	return req
}
