package filter

import (
	"math"
	"testing"

	"github.com/GustavoCaso/carlot/internal/catalog"
)

func sampleEntries() []*catalog.Entry {
	return []*catalog.Entry{
		catalog.NewEntry(0, "Toyota", "", "", 20000),
		catalog.NewEntry(1, "Honda", "", "", 15000),
		catalog.NewEntry(2, "Toyota", "", "", 30000),
	}
}

func indexes(entries []*catalog.Entry) []int {
	result := make([]int, len(entries))
	for i, e := range entries {
		result[i] = e.Index()
	}
	return result
}

func equalIndexes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyScenarios(t *testing.T) {
	tests := []struct {
		name     string
		form     catalog.Form
		expected []int
	}{
		{
			name:     "query and max price",
			form:     catalog.Form{Query: "toyota", MinPrice: "0", MaxPrice: "25000"},
			expected: []int{0},
		},
		{
			name:     "price range above every entry",
			form:     catalog.Form{MinPrice: "100000", MaxPrice: "200000"},
			expected: []int{},
		},
		{
			name:     "query without price bounds",
			form:     catalog.Form{Query: "honda"},
			expected: []int{1},
		},
		{
			name:     "empty form keeps everything in order",
			form:     catalog.Form{},
			expected: []int{0, 1, 2},
		},
		{
			name:     "bounds are inclusive",
			form:     catalog.Form{MinPrice: "15000", MaxPrice: "20000"},
			expected: []int{0, 1},
		},
		{
			name:     "query is trimmed",
			form:     catalog.Form{Query: "  Toyota  "},
			expected: []int{0, 2},
		},
		{
			name:     "substring match",
			form:     catalog.Form{Query: "yot"},
			expected: []int{0, 2},
		},
		{
			name:     "no match",
			form:     catalog.Form{Query: "ford"},
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Apply(sampleEntries(), NewCriteria(tt.form))
			if got := indexes(result); !equalIndexes(got, tt.expected) {
				t.Errorf("Apply() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewCriteria(t *testing.T) {
	tests := []struct {
		name     string
		form     catalog.Form
		expected Criteria
	}{
		{
			name:     "empty min and numeric max",
			form:     catalog.Form{MinPrice: "", MaxPrice: "25000"},
			expected: Criteria{Query: "", MinPrice: 0, MaxPrice: 25000},
		},
		{
			name:     "all defaults",
			form:     catalog.Form{},
			expected: Criteria{Query: "", MinPrice: 0, MaxPrice: math.Inf(1)},
		},
		{
			name:     "unparsable prices",
			form:     catalog.Form{MinPrice: "cheap", MaxPrice: "$30000"},
			expected: Criteria{Query: "", MinPrice: 0, MaxPrice: math.Inf(1)},
		},
		{
			name:     "leading numeric prefix",
			form:     catalog.Form{MinPrice: "10000 dollars", MaxPrice: "25,000"},
			expected: Criteria{Query: "", MinPrice: 10000, MaxPrice: 25},
		},
		{
			name:     "query is normalized",
			form:     catalog.Form{Query: "  TOYOTA Corolla "},
			expected: Criteria{Query: "toyota corolla", MinPrice: 0, MaxPrice: math.Inf(1)},
		},
		{
			name:     "explicit zero max is kept",
			form:     catalog.Form{MaxPrice: "0"},
			expected: Criteria{Query: "", MinPrice: 0, MaxPrice: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCriteria(tt.form)
			if got != tt.expected {
				t.Errorf("NewCriteria() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	entries := sampleEntries()
	criteria := NewCriteria(catalog.Form{Query: "toyota", MaxPrice: "25000"})

	first := Apply(entries, criteria)
	second := Apply(entries, criteria)

	if len(first) != len(second) {
		t.Fatalf("Apply() returned %d then %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs between passes", i)
		}
	}
}

func TestApplyInvertedRangeIsEmpty(t *testing.T) {
	entries := append(sampleEntries(), catalog.NewEntry(3, "Kia", "Rio", "", 25000))

	for _, form := range []catalog.Form{
		{MinPrice: "30000", MaxPrice: "10000"},
		{MinPrice: "25001", MaxPrice: "25000"},
		{Query: "toyota", MinPrice: "1", MaxPrice: "0"},
	} {
		if result := Apply(entries, NewCriteria(form)); len(result) != 0 {
			t.Errorf("Apply(%+v) = %v, want no entries", form, indexes(result))
		}
	}
}

func TestApplyEmptyQueryReturnsWholeCatalog(t *testing.T) {
	entries := sampleEntries()
	result := Apply(entries, DefaultCriteria())

	if len(result) != len(entries) {
		t.Fatalf("Apply() len = %d, want %d", len(result), len(entries))
	}
	for i := range entries {
		if result[i] != entries[i] {
			t.Errorf("entry %d is not the original entry", i)
		}
	}
}

func TestApplyIsCaseInsensitive(t *testing.T) {
	entries := []*catalog.Entry{
		catalog.NewEntry(0, "TOYOTA", "Corolla", "", 1),
		catalog.NewEntry(1, "toyota", "", "", 2),
		catalog.NewEntry(2, "Honda", "ToYoTa-like", "", 3),
		catalog.NewEntry(3, "Mazda", "3", "", 4),
	}

	lower := indexes(Apply(entries, NewCriteria(catalog.Form{Query: "toyota"})))
	upper := indexes(Apply(entries, NewCriteria(catalog.Form{Query: "TOYOTA"})))

	if !equalIndexes(lower, upper) {
		t.Errorf("lower = %v, upper = %v", lower, upper)
	}
	if !equalIndexes(lower, []int{0, 1, 2}) {
		t.Errorf("Apply() = %v, want [0 1 2]", lower)
	}
}

func TestMatchSecondaryLabel(t *testing.T) {
	withModel := catalog.NewEntry(0, "Toyota", "Corolla", "", 20000)
	withoutModel := catalog.NewEntry(1, "Toyota", "", "", 20000)

	criteria := NewCriteria(catalog.Form{Query: "corolla"})
	if !Match(withModel, criteria) {
		t.Error("expected model match")
	}
	if Match(withoutModel, criteria) {
		t.Error("an absent model must not match a non-empty query")
	}
}

func TestMatchMissingPrice(t *testing.T) {
	entry := catalog.NewEntry(0, "Toyota", "Corolla", "", math.NaN())

	tests := []struct {
		name string
		form catalog.Form
	}{
		{name: "default range", form: catalog.Form{}},
		{name: "min bound", form: catalog.Form{MinPrice: "1000"}},
		{name: "max bound", form: catalog.Form{MaxPrice: "1000"}},
		{name: "matching query", form: catalog.Form{Query: "toyota"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Match(entry, NewCriteria(tt.form)) {
				t.Error("an entry without a price should never pass the price range")
			}
		})
	}
}
