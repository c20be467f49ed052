package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/domain"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/reply"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
	"github.com/kailas-cloud/beautydex/internal/logger"
	gen "github.com/kailas-cloud/beautydex/internal/transport/generated"
	discoveryuc "github.com/kailas-cloud/beautydex/internal/usecase/discovery"
	healthuc "github.com/kailas-cloud/beautydex/internal/usecase/health"
)

// maxQueryLength bounds the chat query accepted by POST /v1/ask, in bytes.
const maxQueryLength = 1024

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Asker answers chat queries.
type Asker interface {
	Ask(ctx context.Context, raw string) discoveryuc.Answer
}

// Recommender resolves products and their related items.
type Recommender interface {
	Product(ctx context.Context, id string) (product.Product, error)
	Recommend(ctx context.Context, id string, limit int) ([]product.Product, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server implements generated.ServerInterface for the chi router.
type Server struct {
	gen.Unimplemented
	discovery     Asker
	recommend     Recommender
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(discovery Asker, recommend Recommender, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		discovery: discovery,
		recommend: recommend,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, gen.ErrorResponseCodeProductNotFound),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed),
	}
	return s
}

// Ask handles POST /v1/ask.
func (s *Server) Ask(w http.ResponseWriter, r *http.Request) {
	var req gen.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed, "Query is required")
		return
	}
	if len(req.Query) > maxQueryLength {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed,
			fmt.Sprintf("Query must be at most %d bytes", maxQueryLength))
		return
	}

	ans := s.discovery.Ask(r.Context(), req.Query)
	if ans.Degraded {
		w.Header().Set("X-Degraded", "true")
	}

	writeJSON(w, http.StatusOK, answerToGen(&ans))
}

// GetProduct handles GET /v1/products/{productId}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request, productID gen.ProductId) {
	p, err := s.recommend.Product(r.Context(), productID)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.ProductResponse{
		Product: productToGen(&p),
		Text:    reply.Card(&p),
	})
}

// GetRecommendations handles GET /v1/products/{productId}/recommendations.
func (s *Server) GetRecommendations(
	w http.ResponseWriter, r *http.Request, productID gen.ProductId, params gen.GetRecommendationsParams,
) {
	limit := 0
	if params.Limit != nil {
		if *params.Limit <= 0 || *params.Limit > request.MaxLimit {
			writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeValidationFailed,
				fmt.Sprintf("limit must be between 1 and %d", request.MaxLimit))
			return
		}
		limit = *params.Limit
	}

	products, err := s.recommend.Recommend(r.Context(), productID, limit)
	if err != nil {
		s.handleDomainError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.RecommendationsResponse{
		Products: productsToGen(products),
		Text:     reply.Recommendations(products),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks)
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	status := gen.HealthResponseStatus(report.Status)
	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: status,
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// InvalidParamHandler renders binding failures from the generated wrapper.
func InvalidParamHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var pe *gen.InvalidParamFormatError
	if errors.As(err, &pe) {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid parameter "+pe.ParamName)
		return
	}
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid request")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-facing message without exposing internals.
func safeDomainMessage(err error) string {
	if errors.Is(err, domain.ErrNotFound) {
		return reply.NotFound
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		return err.Error()
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	log := logger.FromContextOr(ctx, s.logger)
	log.Debug("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

func answerToGen(a *discoveryuc.Answer) gen.AskResponse {
	resp := gen.AskResponse{
		Intent:   gen.AskResponseIntent(a.Intent.Kind()),
		Products: productsToGen(a.Products),
		Text:     a.Text,
	}
	if c := a.Intent.Category(); c != "" {
		resp.Category = &c
	}
	if terms := a.Intent.Terms(); len(terms) > 0 {
		resp.Terms = &terms
	}
	return resp
}

func productsToGen(products []product.Product) []gen.Product {
	out := make([]gen.Product, len(products))
	for i := range products {
		out[i] = productToGen(&products[i])
	}
	return out
}

func productToGen(p *product.Product) gen.Product {
	return gen.Product{
		ProductId:   p.ID(),
		Name:        optional(p.Name()),
		Price:       optional(p.Price()),
		Rating:      optional(p.Rating()),
		RatingScore: p.RatingScore(),
		Subcategory: optional(p.Subcategory()),
		Description: optional(p.Description()),
		Comments:    optional(p.Comments()),
		Color:       optional(p.Color()),
		Url:         optional(p.URL()),
	}
}

// optional maps empty strings to nil so they are omitted from JSON.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
