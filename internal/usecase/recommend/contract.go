package recommend

import (
	"context"

	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
)

// Catalog resolves source products and finds related ones.
type Catalog interface {
	FindByID(ctx context.Context, id string) (product.Product, error)
	Find(ctx context.Context, req *request.Request) ([]product.Product, error)
}
