package catalog

import "strings"

// Entry is one card of the catalog. Everything but visibility is fixed at
// capture time.
type Entry struct {
	index   int
	make    string
	model   string
	title   string
	price   float64
	visible bool
}

// NewEntry builds an entry outside of a document, mostly for tests and for
// callers that already hold parsed card data. Entries start visible.
func NewEntry(index int, carMake, model, title string, price float64) *Entry {
	if title == "" {
		title = strings.TrimSpace(carMake + " " + model)
	}

	return &Entry{
		index:   index,
		make:    carMake,
		model:   model,
		title:   title,
		price:   price,
		visible: true,
	}
}

// Index is the position of the card in the document.
func (e *Entry) Index() int {
	return e.index
}

// Make is the primary label used for text matching.
func (e *Entry) Make() string {
	return e.make
}

// Model is the optional secondary label. Absent models are "".
func (e *Entry) Model() string {
	return e.model
}

func (e *Entry) Title() string {
	return e.title
}

// Price is NaN when the card carried no parsable price.
func (e *Entry) Price() float64 {
	return e.price
}

func (e *Entry) Visible() bool {
	return e.visible
}

func (e *Entry) SetVisible(visible bool) {
	e.visible = visible
}
