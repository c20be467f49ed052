package discovery

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/filter"
	"github.com/kailas-cloud/beautydex/internal/domain/search/request"
)

// MaxTerms caps free-text tokens so name and description tests fit one OR group.
const MaxTerms = filter.MaxConditionsPerGroup / 2

// BuildRequest translates an intent into a catalog request.
func BuildRequest(in intent.Intent) (request.Request, error) {
	switch in.Kind() {
	case intent.TopRated:
		return TopRatedRequest(in.Limit())
	case intent.CategoryBrowse, intent.GenericBrowse:
		expr, err := CategoryPredicate(in.Category())
		if err != nil {
			return request.Request{}, err
		}
		return request.New(expr, nil, in.Limit())
	case intent.FreeTextSearch:
		expr, err := FreeTextPredicate(in.Terms())
		if err != nil {
			return request.Request{}, err
		}
		return request.New(expr, nil, in.Limit())
	default:
		return request.Request{}, fmt.Errorf("unsupported intent %q", in.Kind())
	}
}

// FreeTextPredicate ORs a contains test per term over name and description.
// No usable terms yields a predicate that matches nothing.
func FreeTextPredicate(terms []string) (filter.Expression, error) {
	var should []filter.Condition
	used := 0
	for _, term := range terms {
		if strings.TrimSpace(term) == "" {
			continue
		}
		if used == MaxTerms {
			break
		}
		for _, field := range []string{product.FieldName, product.FieldDescription} {
			c, err := filter.NewContains(field, term)
			if err != nil {
				return filter.Expression{}, fmt.Errorf("term %q: %w", term, err)
			}
			should = append(should, c)
		}
		used++
	}
	if len(should) == 0 {
		return filter.Nothing(), nil
	}
	return filter.NewExpression(nil, should, nil)
}

// CategoryPredicate ORs a contains test for the category token over subcategory and description.
func CategoryPredicate(token string) (filter.Expression, error) {
	if strings.TrimSpace(token) == "" {
		return filter.Nothing(), nil
	}
	sub, err := filter.NewContains(product.FieldSubcategory, token)
	if err != nil {
		return filter.Expression{}, err
	}
	desc, err := filter.NewContains(product.FieldDescription, token)
	if err != nil {
		return filter.Expression{}, err
	}
	return filter.NewExpression(nil, []filter.Condition{sub, desc}, nil)
}

// TopRatedRequest selects rated products ordered by rating_score, highest first.
func TopRatedRequest(limit int) (request.Request, error) {
	rated, err := filter.NewPresent(product.FieldRatingScore)
	if err != nil {
		return request.Request{}, err
	}
	expr, err := filter.NewExpression([]filter.Condition{rated}, nil, nil)
	if err != nil {
		return request.Request{}, err
	}
	sort, err := request.NewSort(product.FieldRatingScore, true)
	if err != nil {
		return request.Request{}, err
	}
	return request.New(expr, &sort, limit)
}
