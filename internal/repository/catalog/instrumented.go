package catalog

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
	"github.com/kailas-cloud/beautydex/internal/logger"
	"github.com/kailas-cloud/beautydex/internal/metrics"
)

// Metric op labels.
const (
	opFindByID = "find_by_id"
	opFind     = "find"
)

// Gateway is the product-level catalog contract shared by Repo and Instrumented.
type Gateway interface {
	FindByID(ctx context.Context, id string) (product.Product, error)
	Find(ctx context.Context, req *request.Request) ([]product.Product, error)
}

// Instrumented wraps a Gateway with request metrics and logging.
// Errors pass through unchanged.
type Instrumented struct {
	inner  Gateway
	driver string
	logger *zap.Logger
}

// NewInstrumented wraps a gateway with observability.
func NewInstrumented(inner Gateway, driver string, logger *zap.Logger) *Instrumented {
	return &Instrumented{inner: inner, driver: driver, logger: logger}
}

// FindByID delegates and records the outcome.
func (g *Instrumented) FindByID(ctx context.Context, id string) (product.Product, error) {
	start := time.Now()
	p, err := g.inner.FindByID(ctx, id)
	duration := time.Since(start)

	g.observe(opFindByID, duration, err)

	log := g.log(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Debug("Product not found", zap.String("product_id", id))
	case err != nil:
		log.Error("Catalog lookup failed",
			zap.String("product_id", id),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
	}
	return p, err //nolint:wrapcheck // decorator
}

// Find delegates and records the outcome.
func (g *Instrumented) Find(ctx context.Context, req *request.Request) ([]product.Product, error) {
	start := time.Now()
	products, err := g.inner.Find(ctx, req)
	duration := time.Since(start)

	g.observe(opFind, duration, err)

	log := g.log(ctx)
	if err != nil {
		log.Error("Catalog search failed",
			zap.Int("limit", req.Limit()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err //nolint:wrapcheck // decorator
	}

	log.Debug("Catalog search completed",
		zap.Int("limit", req.Limit()),
		zap.Int("results", len(products)),
		zap.Duration("duration", duration),
	)
	return products, nil
}

func (g *Instrumented) observe(op string, duration time.Duration, err error) {
	status := "ok"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
	}
	metrics.CatalogRequestsTotal.WithLabelValues(op, status).Inc()
	metrics.CatalogRequestDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (g *Instrumented) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, g.logger).With(zap.String("driver", g.driver))
}
