package product

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// ListQuery carries pagination and filter inputs for List.
type ListQuery struct {
	PageNumber int
	PageSize   int
	Filter     string
}

// Sanitize replaces non-positive pagination values with the defaults and
// clamps PageSize to maxPageSize. maxPageSize <= 0 means no upper bound.
func (q ListQuery) Sanitize(maxPageSize int) ListQuery {
	if q.PageNumber <= 0 {
		q.PageNumber = DefaultPageNumber
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if maxPageSize > 0 && q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	return q
}

func (q ListQuery) offset() int { return (q.PageNumber - 1) * q.PageSize }
