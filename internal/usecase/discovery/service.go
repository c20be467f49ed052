package discovery

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/reply"
	"github.com/kailas-cloud/beautydex/internal/domain/search/query"
	"github.com/kailas-cloud/beautydex/internal/domain/text"
	"github.com/kailas-cloud/beautydex/internal/logger"
	"github.com/kailas-cloud/beautydex/internal/metrics"
)

// Answer is the outcome of one chat query.
type Answer struct {
	Query    query.Query
	Intent   intent.Intent
	Products []product.Product
	Text     string
	// Degraded is set when a catalog failure was answered with an empty result.
	Degraded bool
}

// Service classifies chat queries and answers them from the catalog.
type Service struct {
	catalog    Catalog
	classifier Classifier
	tokenizer  text.Tokenizer
	logger     *zap.Logger
}

// New creates a discovery service.
func New(catalog Catalog, classifier Classifier, tokenizer text.Tokenizer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, classifier: classifier, tokenizer: tokenizer, logger: logger}
}

// Ask answers a free-form query. Catalog failures degrade to the intent's empty message.
func (s *Service) Ask(ctx context.Context, raw string) Answer {
	q := query.Parse(raw, s.tokenizer)
	in := s.classifier.Classify(q)
	metrics.IntentsTotal.WithLabelValues(string(in.Kind())).Inc()

	products, err := s.find(ctx, in)
	if err != nil {
		s.degrade(ctx, in, err)
		return Answer{Query: q, Intent: in, Text: reply.Empty(in, q), Degraded: true}
	}

	return Answer{
		Query:    q,
		Intent:   in,
		Products: products,
		Text:     reply.Answer(in, q, products),
	}
}

func (s *Service) find(ctx context.Context, in intent.Intent) ([]product.Product, error) {
	req, err := BuildRequest(in)
	if err != nil {
		return nil, err
	}
	if req.Filters().MatchesNothing() {
		return nil, nil
	}
	return s.catalog.Find(ctx, &req) //nolint:wrapcheck // classified by the caller
}

func (s *Service) degrade(ctx context.Context, in intent.Intent, err error) {
	metrics.DegradedResponsesTotal.WithLabelValues("ask").Inc()

	log := logger.FromContextOr(ctx, s.logger)
	fields := []zap.Field{
		zap.String("operation", "ask"),
		zap.Stringer("intent", in),
		zap.Error(err),
	}
	if errors.Is(err, domain.ErrStore) {
		log.Warn("Catalog unavailable, answering with empty result", fields...)
		return
	}
	log.Error("Query could not be answered", fields...)
}
