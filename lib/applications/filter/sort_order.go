package applicationfilter

type SortOrder string

const (
	SortDateAsc  SortOrder = "date_asc"
	SortDateDesc SortOrder = "date_desc"

	DefaultSortOrder = SortDateDesc
)

// ParseSortOrder falls back to the default order for unknown values.
func ParseSortOrder(value string) SortOrder {
	switch SortOrder(value) {
	case SortDateAsc, SortDateDesc:
		return SortOrder(value)
	}
	return DefaultSortOrder
}

// Toggle returns the order the list switches to on the next click.
func (s SortOrder) Toggle() SortOrder {
	if s == SortDateAsc {
		return SortDateDesc
	}
	return SortDateAsc
}

func (s SortOrder) String() string {
	return string(s)
}
