package discovery

import (
	"context"

	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/query"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
)

// Catalog reads products by predicate.
type Catalog interface {
	Find(ctx context.Context, req *request.Request) ([]product.Product, error)
}

// Classifier maps a parsed query to an intent.
type Classifier interface {
	Classify(q query.Query) intent.Intent
}
