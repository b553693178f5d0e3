package apitype

type SortField int

const (
	SortByName SortField = iota
	SortByWeight
	SortByCreated
	SortByModified
	SortByAccessed
)

type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

func (s SortOrder) Toggle() SortOrder {
	if s == Ascending {
		return Descending
	}
	return Ascending
}

func (s SortOrder) String() string {
	if s == Descending {
		return "Desc"
	}
	return "Asc"
}

type SortSpec struct {
	Field SortField
	Order SortOrder
}

func NewSortSpec() SortSpec {
	return SortSpec{Field: SortByName, Order: Ascending}
}
