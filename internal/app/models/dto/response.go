package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2024-04-23T12:01:05Z"`
}

// NewSuccessResponse wraps data in the standard success envelope.
func NewSuccessResponse(data interface{}) *APIResponse {
	return &APIResponse{
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaginatedResponse wraps a page of items with its pagination metadata.
func NewPaginatedResponse(items interface{}, pagination PaginationInfo) *PaginatedResponse {
	return &PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}
}

// SuccessResponse represents a plain message response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo describes the page window of a list response.
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
