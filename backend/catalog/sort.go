package catalog

import (
	"sort"
	"time"

	"vincit.fi/image-transformer/api/apitype"
)

type lessFunc func(a *apitype.Picture, b *apitype.Picture) bool

// Sort orders pictures in place by a single field. The sort is stable, so
// equal pictures keep their relative order and sorting twice with the same
// spec changes nothing. Missing timestamps sort before present ones.
func Sort(pictures []*apitype.Picture, spec apitype.SortSpec) {
	less := lessFor(spec.Field)
	if spec.Order == apitype.Descending {
		ascending := less
		less = func(a *apitype.Picture, b *apitype.Picture) bool {
			return ascending(b, a)
		}
	}
	sort.SliceStable(pictures, func(i, j int) bool {
		return less(pictures[i], pictures[j])
	})
}

func lessFor(field apitype.SortField) lessFunc {
	switch field {
	case apitype.SortByWeight:
		return func(a *apitype.Picture, b *apitype.Picture) bool {
			return a.Metadata().ByteSize < b.Metadata().ByteSize
		}
	case apitype.SortByCreated:
		return byTime(func(m apitype.Metadata) time.Time { return m.Created })
	case apitype.SortByModified:
		return byTime(func(m apitype.Metadata) time.Time { return m.Modified })
	case apitype.SortByAccessed:
		return byTime(func(m apitype.Metadata) time.Time { return m.Accessed })
	default:
		return func(a *apitype.Picture, b *apitype.Picture) bool {
			return a.Name() < b.Name()
		}
	}
}

func byTime(get func(apitype.Metadata) time.Time) lessFunc {
	return func(a *apitype.Picture, b *apitype.Picture) bool {
		return get(a.Metadata()).Before(get(b.Metadata()))
	}
}
