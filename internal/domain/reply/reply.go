// Package reply renders discovery results as chat text.
package reply

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/beautydex/internal/domain/intent"
	"github.com/kailas-cloud/beautydex/internal/domain/product"
	"github.com/kailas-cloud/beautydex/internal/domain/search/query"
)

// List headers per intent.
const (
	headerTopRated  = "İşte en yüksek puanlı güzellik ürünleri:"
	headerCategory  = "İşte beğenebileceğiniz %s ürünleri:"
	headerGeneric   = "Sizin için bazı popüler %s ürünleri buldum:"
	headerFreeText  = "\"%s\" ile eşleşen güzellik ürünleri:"
	headerRecommend = "Bu ürüne benzer başka ürünler de ilginizi çekebilir:"
)

// Empty result messages per intent.
const (
	emptyTopRated  = "Şu anda en yüksek puanlı ürünleri bulamadım."
	emptyCategory  = "Şu anda %s ürünlerini bulamadım."
	emptyGeneric   = "Şu anda popüler %s ürünleri bulamadım. Belirli bir ürün türü sormayı deneyin."
	emptyFreeText  = "\"%s\" ile eşleşen güzellik ürünleri bulamadım. Farklı bir arama terimi deneyin veya en yüksek puanlı ürünleri sorun."
	emptyRecommend = "Şu anda benzer ürün önerisi bulunamadı."
)

// NotFound is rendered in place of a missing product card.
const NotFound = "Ürün bulunamadı"

const listLine = "%d. %s - Fiyat: %s"

// Card line templates. A line is omitted when its field is empty or null.
const (
	cardName        = "📦 **%s**"
	cardPrice       = "💰 Fiyat: %s"
	cardRating      = "⭐ Puan: %s"
	cardRatingScore = "📊 Puan Skoru: %s"
	cardDescription = "📝 Açıklama: %s"
	cardURL         = "🔗 [Ürünü Görüntüle](%s)"
)

// Answer renders the result list for a classified query.
func Answer(in intent.Intent, q query.Query, products []product.Product) string {
	if len(products) == 0 {
		return Empty(in, q)
	}
	var header string
	switch in.Kind() {
	case intent.TopRated:
		header = headerTopRated
	case intent.CategoryBrowse:
		header = fmt.Sprintf(headerCategory, in.Synonym())
	case intent.GenericBrowse:
		header = fmt.Sprintf(headerGeneric, in.Synonym())
	default:
		header = fmt.Sprintf(headerFreeText, display(q))
	}
	return header + "\n\n" + List(products)
}

// Empty returns the branch-specific "no results" message.
func Empty(in intent.Intent, q query.Query) string {
	switch in.Kind() {
	case intent.TopRated:
		return emptyTopRated
	case intent.CategoryBrowse:
		return fmt.Sprintf(emptyCategory, in.Synonym())
	case intent.GenericBrowse:
		return fmt.Sprintf(emptyGeneric, in.Synonym())
	default:
		return fmt.Sprintf(emptyFreeText, display(q))
	}
}

// List renders numbered "index. name - price" lines starting at 1.
func List(products []product.Product) string {
	lines := make([]string, 0, len(products))
	for i, p := range products {
		lines = append(lines, fmt.Sprintf(listLine, i+1, p.Name(), p.Price()))
	}
	return strings.Join(lines, "\n")
}

// Card renders a single product. A nil product yields NotFound.
func Card(p *product.Product) string {
	if p == nil {
		return NotFound
	}
	var lines []string
	add := func(format, value string) {
		if strings.TrimSpace(value) != "" {
			lines = append(lines, fmt.Sprintf(format, value))
		}
	}
	add(cardName, p.Name())
	add(cardPrice, p.Price())
	add(cardRating, p.Rating())
	if s := p.RatingScore(); s != nil {
		add(cardRatingScore, strconv.FormatFloat(*s, 'f', -1, 64))
	}
	add(cardDescription, p.Description())
	add(cardURL, p.URL())
	return strings.Join(lines, "\n")
}

// Recommendations renders the related-products block.
func Recommendations(products []product.Product) string {
	if len(products) == 0 {
		return emptyRecommend
	}
	return headerRecommend + "\n\n" + List(products)
}

func display(q query.Query) string {
	return strings.TrimSpace(q.Raw())
}
