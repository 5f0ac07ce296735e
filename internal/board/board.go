package board

import (
	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/filter"
	"github.com/GustavoCaso/carlot/internal/logger"
	"github.com/GustavoCaso/carlot/internal/util"
)

// Trigger names the user action that started a filter pass.
type Trigger string

const (
	TriggerLoad         Trigger = "load"
	TriggerSearchButton Trigger = "search-button"
	TriggerPriceButton  Trigger = "price-button"
	TriggerEnter        Trigger = "enter"
)

// Status is what the result counter and the "no results" indicator show.
type Status struct {
	Count     int
	NoResults bool
}

// Board owns the visibility of a captured catalog. Each Apply rewrites the
// visibility of every entry, so no state carries over between passes.
type Board struct {
	catalog *catalog.Catalog
	status  Status
	logger  *logger.Logger
}

func New(c *catalog.Catalog, logger *logger.Logger) *Board {
	return &Board{
		catalog: c,
		status:  Status{Count: c.Len(), NoResults: c.Len() == 0},
		logger:  logger,
	}
}

// Apply builds criteria from the form, filters the catalog and presents the
// result.
func (b *Board) Apply(trigger Trigger, form catalog.Form) Status {
	criteria := filter.NewCriteria(form)
	entries := b.catalog.Entries()
	matched := filter.Apply(entries, criteria)

	b.status = Present(entries, matched)

	b.logger.Debug("filter applied",
		"trigger", string(trigger),
		"query", criteria.Query,
		"min", util.FormatPrice(criteria.MinPrice),
		"max", util.FormatPrice(criteria.MaxPrice),
		"matched", b.status.Count,
		"total", len(entries),
	)

	return b.status
}

func (b *Board) Status() Status {
	return b.status
}

func (b *Board) Catalog() *catalog.Catalog {
	return b.catalog
}

// Visible returns the shown entries in document order.
func (b *Board) Visible() []*catalog.Entry {
	var visible []*catalog.Entry
	for _, entry := range b.catalog.Entries() {
		if entry.Visible() {
			visible = append(visible, entry)
		}
	}
	return visible
}
