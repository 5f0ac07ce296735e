package filter

import (
	"strings"

	"github.com/GustavoCaso/carlot/internal/catalog"
)

// Match reports whether an entry passes both the text and the price
// constraint. A NaN price never satisfies the range.
func Match(entry *catalog.Entry, criteria Criteria) bool {
	return matchesQuery(entry, criteria.Query) && matchesPrice(entry.Price(), criteria)
}

// Apply returns the entries matching criteria in their original order.
func Apply(entries []*catalog.Entry, criteria Criteria) []*catalog.Entry {
	matched := make([]*catalog.Entry, 0, len(entries))

	for _, entry := range entries {
		if Match(entry, criteria) {
			matched = append(matched, entry)
		}
	}

	return matched
}

func matchesQuery(entry *catalog.Entry, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(entry.Make()), query) ||
		strings.Contains(strings.ToLower(entry.Model()), query)
}

func matchesPrice(price float64, criteria Criteria) bool {
	return price >= criteria.MinPrice && price <= criteria.MaxPrice
}
