package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"upkeep/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// PageSize defaults to DefaultPageSize if less than 1, and is capped at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// ParsePagination parses pagination parameters from Gin context query string.
// Returns validated pagination with defaults applied.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
