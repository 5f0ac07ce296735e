package board

import "github.com/GustavoCaso/carlot/internal/catalog"

// Present shows the entries that are in matched and hides the rest.
// Membership is by identity, the predicate is not evaluated again.
func Present(entries []*catalog.Entry, matched []*catalog.Entry) Status {
	shown := make(map[*catalog.Entry]struct{}, len(matched))
	for _, entry := range matched {
		shown[entry] = struct{}{}
	}

	for _, entry := range entries {
		_, ok := shown[entry]
		entry.SetVisible(ok)
	}

	count := len(matched)

	return Status{
		Count:     count,
		NoResults: count == 0,
	}
}
