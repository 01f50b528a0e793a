package catalog

import "sort"

// Sort orders entries in place: tunes by (Category, Name), documents by
// Name. File breaks remaining ties so the order never depends on how the
// filesystem listed the files.
func Sort(kind Kind, entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if kind == KindTunes && a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.File < b.File
	})
}
