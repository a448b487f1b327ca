package pagination

// PaginationParams holds offset pagination parameters
type PaginationParams struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Validate normalizes pagination parameters to sane defaults
func (p *PaginationParams) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = 20
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the database offset for the current page
func (p *PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta holds pagination metadata for responses
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta builds pagination metadata from params and a total count
func NewMeta(params *PaginationParams, total int64) *Meta {
	totalPages := int(total) / params.PerPage
	if int(total)%params.PerPage > 0 {
		totalPages++
	}
	return &Meta{
		Page:       params.Page,
		PerPage:    params.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// PaginatedResult wraps a page of items with its metadata
type PaginatedResult[T any] struct {
	Items []T   `json:"items"`
	Meta  *Meta `json:"meta"`
}

// NewPaginatedResult creates a paginated result
func NewPaginatedResult[T any](items []T, params *PaginationParams, total int64) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Items: items,
		Meta:  NewMeta(params, total),
	}
}
