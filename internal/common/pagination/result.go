package pagination

// PagedResult is one page of an ordered collection together with the totals needed to
// navigate the rest of it. It doubles as the JSON list envelope.
//
// TotalPages is derived from TotalRecords and PageSize; construct values with
// NewPagedResult rather than by hand.
type PagedResult[T any] struct {
	PageIndex    int   `json:"pageIndex"`
	PageSize     int   `json:"pageSize"`
	TotalRecords int64 `json:"totalRecords"`
	TotalPages   int   `json:"totalPages"`
	Data         []T   `json:"data"`
}

// NewPagedResult builds a PagedResult and computes TotalPages.
// A nil data slice is replaced with an empty one so the envelope encodes "data": [].
func NewPagedResult[T any](pageIndex, pageSize int, totalRecords int64, data []T) PagedResult[T] {
	if data == nil {
		data = []T{}
	}
	return PagedResult[T]{
		PageIndex:    pageIndex,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   CalculateTotalPages(totalRecords, pageSize),
		Data:         data,
	}
}

// Map converts every item of a page, keeping the paging totals.
func Map[T, U any](p PagedResult[T], fn func(T) U) PagedResult[U] {
	out := make([]U, 0, len(p.Data))
	for _, item := range p.Data {
		out = append(out, fn(item))
	}
	return PagedResult[U]{
		PageIndex:    p.PageIndex,
		PageSize:     p.PageSize,
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages,
		Data:         out,
	}
}
