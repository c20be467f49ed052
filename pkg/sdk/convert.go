package beautydex

import (
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	discoveryuc "github.com/kailas-cloud/beautydex/internal/usecase/discovery"
)

func toDomainProduct(p *Product) (product.Product, error) {
	return product.New(p.ID, product.Attributes{
		Name:        p.Name,
		Price:       p.Price,
		Rating:      p.Rating,
		RatingScore: p.RatingScore,
		Subcategory: p.Subcategory,
		Description: p.Description,
		Comments:    p.Comments,
		Color:       p.Color,
		URL:         p.URL,
	})
}

func fromDomainProduct(p *product.Product) Product {
	return Product{
		ID:          p.ID(),
		Name:        p.Name(),
		Price:       p.Price(),
		Rating:      p.Rating(),
		RatingScore: p.RatingScore(),
		Subcategory: p.Subcategory(),
		Description: p.Description(),
		Comments:    p.Comments(),
		Color:       p.Color(),
		URL:         p.URL(),
	}
}

func fromDomainProducts(products []product.Product) []Product {
	if len(products) == 0 {
		return nil
	}
	out := make([]Product, len(products))
	for i := range products {
		out[i] = fromDomainProduct(&products[i])
	}
	return out
}

func fromAnswer(a *discoveryuc.Answer) Answer {
	ans := Answer{
		Intent:   Intent(a.Intent.Kind()),
		Category: a.Intent.Category(),
		Text:     a.Text,
		Products: fromDomainProducts(a.Products),
		Degraded: a.Degraded,
	}
	if terms := a.Intent.Terms(); len(terms) > 0 {
		ans.Terms = terms
	}
	return ans
}
