package catalog

// Catalog is the ordered snapshot of every card captured at startup. Its
// membership and order never change.
type Catalog struct {
	entries []*Entry
}

func New(entries []*Entry) *Catalog {
	snapshot := make([]*Entry, len(entries))
	copy(snapshot, entries)

	return &Catalog{entries: snapshot}
}

// Entries returns the entries in document order. The slice is a copy; the
// entries are shared.
func (c *Catalog) Entries() []*Entry {
	entries := make([]*Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Form holds the raw text of the query, min price and max price fields.
type Form struct {
	Query    string
	MinPrice string
	MaxPrice string
}
