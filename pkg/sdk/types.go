package beautydex

// Intent names the classified purpose of a chat query.
type Intent string

// Intent constants.
const (
	IntentTopRated       Intent = "top_rated"
	IntentCategoryBrowse Intent = "category_browse"
	IntentGenericBrowse  Intent = "generic_browse"
	IntentFreeTextSearch Intent = "free_text_search"
)

// Product is a catalog item. Only ID is required.
type Product struct {
	ID          string
	Name        string
	Price       string
	Rating      string
	RatingScore *float64 // nil when the product has no numeric score
	Subcategory string
	Description string
	Comments    string
	Color       string
	URL         string
}

// Answer is the reply to a chat query.
type Answer struct {
	Intent   Intent
	Category string   // lexicon token for category and generic browse
	Terms    []string // search terms for free-text search
	Text     string
	Products []Product
	// Degraded is set when the catalog failed and the empty reply was rendered instead.
	Degraded bool
}
