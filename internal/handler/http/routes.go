package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// productIDParam is the path parameter of single-product routes. Only decimal
// digits match; anything else falls through to the router's 404.
const productIDParam = "id"

// compressionLevel is the gzip/deflate level of compressed JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withMetrics)
	router.Use(withCORS)
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	// service routes
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.handler())

	router.Route("/products", func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// read routes are public
		r.Get("/", h.listProducts)
		r.Get("/{"+productIDParam+":[0-9]+}", h.getProduct)

		// mutating routes check the bearer token in the service layer
		r.Post("/", h.createProduct)
		r.Patch("/{"+productIDParam+":[0-9]+}", h.updateProduct)
		r.Delete("/{"+productIDParam+":[0-9]+}", h.deleteProduct)
	})

	return router
}
