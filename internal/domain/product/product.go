package product

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Catalog field names shared by every driver.
const (
	FieldID          = "product_id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldRating      = "rating"
	FieldRatingScore = "rating_score"
	FieldSubcategory = "subcategory"
	FieldDescription = "description"
	FieldComments    = "comments"
	FieldColor       = "color"
	FieldURL         = "url"
)

// Fields lists every catalog column in display order.
var Fields = []string{
	FieldID, FieldName, FieldPrice, FieldRating, FieldRatingScore,
	FieldSubcategory, FieldDescription, FieldComments, FieldColor, FieldURL,
}

// Product is a read-only catalog item.
type Product struct {
	id          string
	name        string
	price       string
	rating      string
	ratingScore *float64
	subcategory string
	description string
	comments    string
	color       string
	url         string
}

// Attributes carries the optional display fields of a Product.
type Attributes struct {
	Name        string
	Price       string
	Rating      string
	RatingScore *float64
	Subcategory string
	Description string
	Comments    string
	Color       string
	URL         string
}

// New validates and creates a Product.
func New(id string, attrs Attributes) (Product, error) {
	if strings.TrimSpace(id) == "" {
		return Product{}, fmt.Errorf("product id is required")
	}
	if s := attrs.RatingScore; s != nil {
		if math.IsNaN(*s) || math.IsInf(*s, 0) || *s < 0 {
			return Product{}, fmt.Errorf("rating score for %q must be a finite non-negative number", id)
		}
		v := *s
		attrs.RatingScore = &v
	}
	return Product{
		id:          id,
		name:        attrs.Name,
		price:       attrs.Price,
		rating:      attrs.Rating,
		ratingScore: attrs.RatingScore,
		subcategory: attrs.Subcategory,
		description: attrs.Description,
		comments:    attrs.Comments,
		color:       attrs.Color,
		url:         attrs.URL,
	}, nil
}

// FromFields builds a Product from a flat field map as stored by the catalog drivers.
// An unparseable rating score is treated as null.
func FromFields(fields map[string]string) (Product, error) {
	return New(fields[FieldID], Attributes{
		Name:        fields[FieldName],
		Price:       fields[FieldPrice],
		Rating:      fields[FieldRating],
		RatingScore: ParseScore(fields[FieldRatingScore]),
		Subcategory: fields[FieldSubcategory],
		Description: fields[FieldDescription],
		Comments:    fields[FieldComments],
		Color:       fields[FieldColor],
		URL:         fields[FieldURL],
	})
}

// ParseScore coerces text to a rating score, returning nil when the text is
// empty, unparseable, negative or not finite.
func ParseScore(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return &f
}

// ToFields flattens the product into a field map. A null rating score is omitted.
func (p Product) ToFields() map[string]string {
	m := map[string]string{
		FieldID:          p.id,
		FieldName:        p.name,
		FieldPrice:       p.price,
		FieldRating:      p.rating,
		FieldSubcategory: p.subcategory,
		FieldDescription: p.description,
		FieldComments:    p.comments,
		FieldColor:       p.color,
		FieldURL:         p.url,
	}
	if p.ratingScore != nil {
		m[FieldRatingScore] = strconv.FormatFloat(*p.ratingScore, 'f', -1, 64)
	}
	return m
}

// ID returns the unique product key.
func (p Product) ID() string { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Price returns the display price.
func (p Product) Price() string { return p.price }

// Rating returns the display rating.
func (p Product) Rating() string { return p.rating }

// RatingScore returns the ranking score, nil when unknown.
func (p Product) RatingScore() *float64 {
	if p.ratingScore == nil {
		return nil
	}
	v := *p.ratingScore
	return &v
}

// Subcategory returns the free-text subcategory token.
func (p Product) Subcategory() string { return p.subcategory }

// Description returns the product description.
func (p Product) Description() string { return p.description }

// Comments returns the aggregated customer comments.
func (p Product) Comments() string { return p.comments }

// Color returns the color variant.
func (p Product) Color() string { return p.color }

// URL returns the product page link.
func (p Product) URL() string { return p.url }
