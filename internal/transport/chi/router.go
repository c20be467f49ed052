package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/beautydex/internal/metrics"
	gen "github.com/kailas-cloud/beautydex/internal/transport/generated"
)

// NewRouter mounts the API on a chi router with the standard middleware chain.
func NewRouter(s *Server, allowedOrigins []string, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(JSONRecoverer(log))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEvent(log))
	r.Use(CORS(allowedOrigins))
	r.Use(metrics.Middleware())

	return gen.HandlerWithOptions(s, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: InvalidParamHandler,
	})
}
