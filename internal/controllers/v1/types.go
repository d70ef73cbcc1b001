package v1

import (
	ft_uuid "github.com/fintrack/backend/internal/uuid"
)

type URIID struct {
	ID ft_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for list endpoint responses.
type Pagination struct {
	Count    int   `json:"count" example:"25"`    // The amount of records returned in this response
	Page     int   `json:"page" example:"1"`      // The requested page, starting at 1
	PageSize int   `json:"pageSize" example:"25"` // The maximum number of records per page
	Total    int64 `json:"total" example:"827"`   // The total number of records matching the query
	Pages    int64 `json:"pages" example:"34"`    // The total number of pages
}

// newPagination calculates the pagination information for a response.
func newPagination(count, page, pageSize int, total int64) *Pagination {
	pages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		pages++
	}

	return &Pagination{
		Count:    count,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pages,
	}
}
