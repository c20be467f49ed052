// Package recommend resolves single products and their related items.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
	"github.com/kailas-cloud/beautydex/internal/logger"
	"github.com/kailas-cloud/beautydex/internal/metrics"
)

// DefaultLimit is the number of related products returned when the caller does not set one.
const DefaultLimit = 5

// Service looks up products and recommends items from the same subcategory.
type Service struct {
	catalog      Catalog
	defaultLimit int
	maxLimit     int
	logger       *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDefaultLimit overrides the limit used when the caller passes zero.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

// WithMaxLimit caps caller-supplied limits.
func WithMaxLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLimit = n
		}
	}
}

// New creates a recommendation service.
func New(catalog Catalog, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		catalog:      catalog,
		defaultLimit: DefaultLimit,
		maxLimit:     request.MaxLimit,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Product returns a single product. A catalog failure is reported as domain.ErrNotFound.
func (s *Service) Product(ctx context.Context, id string) (product.Product, error) {
	if strings.TrimSpace(id) == "" {
		return product.Product{}, fmt.Errorf("%w: product id is required", domain.ErrInvalidRequest)
	}

	p, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.degrade(ctx, "product", id, err)
		}
		return product.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// Recommend returns up to limit products sharing the source product's subcategory.
// The source product is never part of the result. A missing source, an empty
// subcategory or a catalog failure yields an empty list.
func (s *Service) Recommend(ctx context.Context, id string, limit int) ([]product.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrInvalidRequest)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidRequest)
	}

	products, err := s.resolve(ctx, id, s.clamp(limit))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.FromContextOr(ctx, s.logger).Debug("Recommendation source not found",
				zap.String("product_id", id))
			return nil, nil
		}
		s.degrade(ctx, "recommend", id, err)
		return nil, nil
	}
	return products, nil
}

func (s *Service) resolve(ctx context.Context, id string, limit int) ([]product.Product, error) {
	source, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve source %s: %w", id, err)
	}

	subcategory := strings.TrimSpace(source.Subcategory())
	if subcategory == "" {
		return nil, nil
	}

	expr, err := RelatedPredicate(source.ID(), subcategory)
	if err != nil {
		return nil, err
	}
	// One extra row keeps the result full if a driver returns the source anyway.
	req, err := request.New(expr, nil, limit+1)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	related, err := s.catalog.Find(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("find related to %s: %w", id, err)
	}

	out := related[:0:0]
	for _, p := range related {
		if p.ID() == source.ID() {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// RelatedPredicate matches products whose subcategory contains subcategory, excluding id.
func RelatedPredicate(id, subcategory string) (filter.Expression, error) {
	same, err := filter.NewContains(product.FieldSubcategory, subcategory)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("subcategory condition: %w", err)
	}
	self, err := filter.NewEquals(product.FieldID, id)
	if err != nil {
		return filter.Expression{}, fmt.Errorf("exclusion condition: %w", err)
	}
	return filter.NewExpression([]filter.Condition{same}, nil, []filter.Condition{self})
}

func (s *Service) clamp(limit int) int {
	if limit == 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return limit
}

func (s *Service) degrade(ctx context.Context, op, id string, err error) {
	metrics.DegradedResponsesTotal.WithLabelValues(op).Inc()
	logger.FromContextOr(ctx, s.logger).Warn("Catalog unavailable, answering with empty result",
		zap.String("operation", op),
		zap.String("product_id", id),
		zap.Error(err),
	)
}
