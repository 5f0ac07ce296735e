package filter

import (
	"math"
	"strings"

	"github.com/GustavoCaso/carlot/internal/catalog"
	"github.com/GustavoCaso/carlot/internal/util"
)

// Criteria holds the normalized filter values for a single pass.
// An empty Query matches every entry.
type Criteria struct {
	Query    string
	MinPrice float64
	MaxPrice float64
}

// DefaultCriteria matches the whole catalog.
func DefaultCriteria() Criteria {
	return Criteria{
		Query:    "",
		MinPrice: 0,
		MaxPrice: math.Inf(1),
	}
}

// NewCriteria normalizes the raw field text. Unparsable or empty prices fall
// back to 0 and +Inf; no bound is validated against the other. A parsed
// "0" is a real bound: an explicit maximum of 0 stays 0 instead of falling
// back to +Inf, so only listings priced at 0 can match it.
func NewCriteria(form catalog.Form) Criteria {
	criteria := DefaultCriteria()
	criteria.Query = strings.ToLower(strings.TrimSpace(form.Query))

	if minPrice, ok := util.ParseFloatPrefix(form.MinPrice); ok {
		criteria.MinPrice = minPrice
	}

	if maxPrice, ok := util.ParseFloatPrefix(form.MaxPrice); ok {
		criteria.MaxPrice = maxPrice
	}

	return criteria
}
