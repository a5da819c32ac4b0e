package models

// PageRequest holds the page slicing parameters supplied by the caller
type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize validates the page parameters and applies defaults
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset calculates the SQL offset for the page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginationResult holds pagination metadata
type PaginationResult struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginationResult creates a pagination result
func NewPaginationResult(req PageRequest, totalCount int64) PaginationResult {
	totalPages := int(totalCount) / req.PageSize
	if int(totalCount)%req.PageSize > 0 {
		totalPages++
	}

	return PaginationResult{
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
