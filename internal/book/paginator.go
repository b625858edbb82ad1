package book

// PageResult is one feed page plus the pagination metadata the client
// needs to drive load-more.
type PageResult struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalBooks  int64  `json:"totalBooks"`
	TotalPages  int    `json:"totalPages"`
}

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// Paginate returns the requested slice of the feed order. page and limit
// are coerced to at least 1; a page past the end yields an empty result
// with the correct totals rather than an error.
func Paginate(s Store, page, limit int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	skip := (page - 1) * limit

	total, err := s.Count()
	if err != nil {
		return nil, err
	}

	// An absurdly large page can overflow skip to a negative value; treat
	// it as past the end rather than letting the store see a bad offset.
	books := []Book{}
	if skip >= 0 && int64(skip) < total {
		books, err = s.ListPage(skip, limit)
		if err != nil {
			return nil, err
		}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PageResult{
		Books:       books,
		CurrentPage: page,
		TotalBooks:  total,
		TotalPages:  totalPages,
	}, nil
}
