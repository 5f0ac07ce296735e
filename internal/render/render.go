package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/storage"
	"github.com/GustavoCaso/carlot/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

const defaultTitle = "Car listings"

// Options controls the markup of the rendered document. Selectors must use
// "#id" for the list and inputs and ".class" for cards so the document can be
// captured again with the same selectors.
type Options struct {
	Title     string
	Currency  string
	Selectors catalog.Selectors
	Form      catalog.Form
}

type card struct {
	Attrs    template.HTMLAttr
	Title    string
	HasPrice bool
	Price    string
}

type page struct {
	Title     string
	Currency  string
	CardClass string
	Selectors catalog.Selectors
	Form      catalog.Form
	Cards     []card
}

var templateFuncs = template.FuncMap{
	"groupThousands": util.GroupThousands,
	"idAttr":         idAttr,
}

var catalogTempl = template.Must(template.New("catalog.html").Funcs(templateFuncs).ParseFS(content, "templates/catalog.html"))

// Document writes the catalog page for listings, one card per listing in the
// given order.
func Document(w io.Writer, listings []storage.Listing, opts Options) error {
	if !strings.HasPrefix(opts.Selectors.Card, ".") {
		return fmt.Errorf("card selector %q must be a class selector", opts.Selectors.Card)
	}

	if idAttr(opts.Selectors.List) == "" {
		return fmt.Errorf("list selector %q must be an id selector", opts.Selectors.List)
	}

	if opts.Title == "" {
		opts.Title = defaultTitle
	}

	cards := make([]card, len(listings))
	for i, l := range listings {
		cards[i] = newCard(l, opts.Selectors)
	}

	err := catalogTempl.Execute(w, page{
		Title:     opts.Title,
		Currency:  opts.Currency,
		CardClass: strings.TrimPrefix(opts.Selectors.Card, "."),
		Selectors: opts.Selectors,
		Form:      opts.Form,
		Cards:     cards,
	})
	if err != nil {
		return fmt.Errorf("failed to render catalog: %w", err)
	}

	return nil
}

func newCard(l storage.Listing, sel catalog.Selectors) card {
	c := card{Title: l.Title()}
	if c.Title == "" {
		c.Title = strings.TrimSpace(l.Make() + " " + l.Model())
	}

	attrs := []string{attr(sel.MakeAttr, l.Make())}
	if l.Model() != "" {
		attrs = append(attrs, attr(sel.ModelAttr, l.Model()))
	}

	if p := l.Price(); p != nil {
		c.HasPrice = true
		c.Price = util.FormatPrice(*p)
		attrs = append(attrs, attr(sel.PriceAttr, strconv.FormatFloat(*p, 'f', -1, 64)))
	}

	c.Attrs = template.HTMLAttr(strings.Join(attrs, " "))

	return c
}

func idAttr(selector string) template.HTMLAttr {
	id := strings.TrimPrefix(selector, "#")
	if id == "" || id == selector {
		return ""
	}
	return template.HTMLAttr(fmt.Sprintf(`id="%s"`, template.HTMLEscapeString(id)))
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`,
		template.HTMLEscapeString(name), template.HTMLEscapeString(value))
}
