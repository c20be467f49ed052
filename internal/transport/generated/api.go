// Package generated holds the HTTP types and chi routing for api/openapi.yaml,
// laid out the way oapi-codegen emits chi servers.
package generated

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// Defines values for AskResponseIntent.
const (
	AskResponseIntentCategoryBrowse AskResponseIntent = "category_browse"
	AskResponseIntentFreeTextSearch AskResponseIntent = "free_text_search"
	AskResponseIntentGenericBrowse  AskResponseIntent = "generic_browse"
	AskResponseIntentTopRated       AskResponseIntent = "top_rated"
)

// Defines values for ErrorResponseCode.
const (
	ErrorResponseCodeBadRequest       ErrorResponseCode = "bad_request"
	ErrorResponseCodeInternalError    ErrorResponseCode = "internal_error"
	ErrorResponseCodeNotFound         ErrorResponseCode = "not_found"
	ErrorResponseCodeProductNotFound  ErrorResponseCode = "product_not_found"
	ErrorResponseCodeValidationFailed ErrorResponseCode = "validation_failed"
)

// Defines values for HealthResponseChecks.
const (
	HealthResponseChecksError HealthResponseChecks = "error"
	HealthResponseChecksOk    HealthResponseChecks = "ok"
)

// Defines values for HealthResponseStatus.
const (
	HealthResponseStatusDegraded HealthResponseStatus = "degraded"
	HealthResponseStatusError    HealthResponseStatus = "error"
	HealthResponseStatusOk       HealthResponseStatus = "ok"
)

// AskRequest defines model for AskRequest.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse defines model for AskResponse.
type AskResponse struct {
	Category *string           `json:"category,omitempty"`
	Intent   AskResponseIntent `json:"intent"`
	Products []Product         `json:"products"`
	Terms    *[]string         `json:"terms,omitempty"`
	Text     string            `json:"text"`
}

// AskResponseIntent defines model for AskResponse.Intent.
type AskResponseIntent string

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// ErrorResponseCode defines model for ErrorResponse.Code.
type ErrorResponseCode string

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Checks map[string]HealthResponseChecks `json:"checks"`
	Status HealthResponseStatus            `json:"status"`
}

// HealthResponseChecks defines model for HealthResponse.Checks.
type HealthResponseChecks string

// HealthResponseStatus defines model for HealthResponse.Status.
type HealthResponseStatus string

// Product defines model for Product.
type Product struct {
	Color       *string  `json:"color,omitempty"`
	Comments    *string  `json:"comments,omitempty"`
	Description *string  `json:"description,omitempty"`
	Name        *string  `json:"name,omitempty"`
	Price       *string  `json:"price,omitempty"`
	ProductId   string   `json:"product_id"`
	Rating      *string  `json:"rating,omitempty"`
	RatingScore *float64 `json:"rating_score"`
	Subcategory *string  `json:"subcategory,omitempty"`
	Url         *string  `json:"url,omitempty"`
}

// ProductResponse defines model for ProductResponse.
type ProductResponse struct {
	Product Product `json:"product"`
	Text    string  `json:"text"`
}

// RecommendationsResponse defines model for RecommendationsResponse.
type RecommendationsResponse struct {
	Products []Product `json:"products"`
	Text     string    `json:"text"`
}

// ProductId defines model for ProductId.
type ProductId = string

// GetRecommendationsParams defines parameters for GetRecommendations.
type GetRecommendationsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// AskJSONRequestBody defines body for Ask for application/json ContentType.
type AskJSONRequestBody = AskRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /v1/ask)
	Ask(w http.ResponseWriter, r *http.Request)
	// (GET /v1/products/{productId})
	GetProduct(w http.ResponseWriter, r *http.Request, productId ProductId)
	// (GET /v1/products/{productId}/recommendations)
	GetRecommendations(w http.ResponseWriter, r *http.Request, productId ProductId, params GetRecommendationsParams)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// Unimplemented server implementation that returns http.StatusNotImplemented for each endpoint.
type Unimplemented struct{}

// (POST /v1/ask)
func (_ Unimplemented) Ask(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /v1/products/{productId})
func (_ Unimplemented) GetProduct(w http.ResponseWriter, r *http.Request, productId ProductId) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /v1/products/{productId}/recommendations)
func (_ Unimplemented) GetRecommendations(
	w http.ResponseWriter, r *http.Request, productId ProductId, params GetRecommendationsParams,
) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /health)
func (_ Unimplemented) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /metrics)
func (_ Unimplemented) Metrics(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareFunc wraps a single operation handler.
type MiddlewareFunc func(http.Handler) http.Handler

// Ask operation middleware
func (siw *ServerInterfaceWrapper) Ask(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Ask(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetProduct operation middleware
func (siw *ServerInterfaceWrapper) GetProduct(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "productId" -------------
	var productId ProductId

	err = runtime.BindStyledParameterWithLocation(
		"simple", false, "productId", runtime.ParamLocationPath, chi.URLParam(r, "productId"), &productId,
	)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "productId", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetProduct(w, r, productId)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetRecommendations operation middleware
func (siw *ServerInterfaceWrapper) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "productId" -------------
	var productId ProductId

	err = runtime.BindStyledParameterWithLocation(
		"simple", false, "productId", runtime.ParamLocationPath, chi.URLParam(r, "productId"), &productId,
	)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "productId", Err: err})
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetRecommendationsParams

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetRecommendations(w, r, productId, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// HealthCheck operation middleware
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.HealthCheck(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// Metrics operation middleware
func (siw *ServerInterfaceWrapper) Metrics(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.Metrics(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InvalidParamFormatError reports a path or query parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// ChiServerOptions configures the generated router.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/v1/ask", wrapper.Ask)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/v1/products/{productId}", wrapper.GetProduct)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/v1/products/{productId}/recommendations", wrapper.GetRecommendations)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/metrics", wrapper.Metrics)
	})

	return r
}
