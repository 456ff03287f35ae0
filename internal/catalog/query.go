package catalog

import (
	"math/rand"
	"strings"
)

// View is the derived, filtered and paginated slice of the catalog. It
// is recomputed wholesale from the current record set; it is never
// mutated in place.
type View struct {
	Records    []Record
	TotalCount int
	PageIndex  int
	PageCount  int
}

func matches(r Record, activeTypes []string, search string) bool {
	if len(activeTypes) > 0 {
		found := false
		for _, t := range activeTypes {
			if r.HasType(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(search))
}

// Filter returns the records passing the type and search predicates, in
// store order. An empty activeTypes set applies no type filtering; an
// empty search term applies no name filtering. Type matching is exact
// and case-sensitive, name matching is a case-insensitive substring
// test.
func Filter(records []Record, activeTypes []string, search string) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if matches(r, activeTypes, search) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// DeriveView filters the record set and slices out the requested page.
// PageCount is ceil(filtered/pageSize), zero when nothing matched. An
// out-of-range pageIndex yields an empty page, not an error; clamping
// is the caller's concern.
func DeriveView(records []Record, activeTypes []string, search string, pageIndex, pageSize int) View {
	filtered := Filter(records, activeTypes, search)

	view := View{
		Records:    []Record{},
		TotalCount: len(filtered),
		PageIndex:  pageIndex,
	}
	if pageSize < 1 {
		return view
	}
	view.PageCount = (len(filtered) + pageSize - 1) / pageSize

	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(filtered) {
		return view
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	view.Records = filtered[start:end]
	return view
}

// TypeVocabulary returns the distinct type names across the full record
// set in order of first appearance. It is derived from the unfiltered
// set: active filters narrow the view, never the vocabulary.
func TypeVocabulary(records []Record) []string {
	seen := make(map[string]struct{})
	vocab := make([]string, 0)
	for _, r := range records {
		for _, t := range r.Types {
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			vocab = append(vocab, t)
		}
	}
	return vocab
}

// RandomPick draws uniformly from the currently filtered set. It
// reports false when the filtered set is empty.
func RandomPick(records []Record, activeTypes []string, search string, rng *rand.Rand) (Record, bool) {
	filtered := Filter(records, activeTypes, search)
	if len(filtered) == 0 {
		return Record{}, false
	}
	return filtered[rng.Intn(len(filtered))], true
}
