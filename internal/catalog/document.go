package catalog

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/GustavoCaso/carlot/internal/util"
)

// Selectors describes where cards and filter fields live in a rendered
// catalog document.
type Selectors struct {
	List  string
	Card  string
	Title string

	MakeAttr  string
	ModelAttr string
	PriceAttr string

	QueryInput string
	MinInput   string
	MaxInput   string
}

func DefaultSelectors() Selectors {
	return Selectors{
		List:       "#car-list",
		Card:       ".car-card",
		Title:      "h3",
		MakeAttr:   "data-make",
		ModelAttr:  "data-model",
		PriceAttr:  "data-price",
		QueryInput: "#query",
		MinInput:   "#min-price",
		MaxInput:   "#max-price",
	}
}

// Document is what a rendered catalog page gives us at startup: the cards and
// the initial values of the filter fields.
type Document struct {
	Catalog *Catalog
	Form    Form
}

// ParseDocument captures the cards of a rendered catalog page in document
// order. Cards without a make attribute get an empty make, cards without a
// parsable price get a NaN price.
func ParseDocument(r io.Reader, sel Selectors) (*Document, error) {
	if sel.Card == "" {
		return nil, fmt.Errorf("card selector cannot be empty")
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog document: %w", err)
	}

	scope := doc.Selection
	if sel.List != "" {
		scope = doc.Find(sel.List).First()
		if scope.Length() == 0 {
			return nil, fmt.Errorf("catalog list %q not found in document", sel.List)
		}
	}

	var entries []*Entry
	scope.Find(sel.Card).Each(func(i int, s *goquery.Selection) {
		entries = append(entries, extractEntry(i, s, sel))
	})

	return &Document{
		Catalog: New(entries),
		Form: Form{
			Query:    inputValue(doc, sel.QueryInput),
			MinPrice: inputValue(doc, sel.MinInput),
			MaxPrice: inputValue(doc, sel.MaxInput),
		},
	}, nil
}

func extractEntry(index int, s *goquery.Selection, sel Selectors) *Entry {
	carMake := s.AttrOr(sel.MakeAttr, "")
	model := s.AttrOr(sel.ModelAttr, "")

	price := math.NaN()
	if raw, ok := s.Attr(sel.PriceAttr); ok {
		if parsed, valid := util.ParseFloatPrefix(raw); valid {
			price = parsed
		}
	}

	var title string
	if sel.Title != "" {
		title = strings.Join(strings.Fields(s.Find(sel.Title).First().Text()), " ")
	}

	return NewEntry(index, carMake, model, title, price)
}

func inputValue(doc *goquery.Document, selector string) string {
	if selector == "" {
		return ""
	}
	return doc.Find(selector).First().AttrOr("value", "")
}
