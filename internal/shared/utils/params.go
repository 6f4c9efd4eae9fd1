package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"upkeep/internal/shared/errors"
	"upkeep/internal/shared/id"
)

// ParseSIDParam parses and validates a Stripe-style prefixed ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "sid").
// prefix is the expected SID prefix (e.g., id.PrefixCompany).
// entityName is used in error messages (e.g., "company").
func ParseSIDParam(c *gin.Context, paramName, prefix, entityName string) (string, error) {
	sid := c.Param(paramName)
	if sid == "" {
		return "", errors.NewValidationError(entityName + " ID is required")
	}

	if err := id.ValidatePrefix(sid, prefix); err != nil {
		return "", errors.NewValidationError(
			fmt.Sprintf("invalid %s ID format, expected %s_xxxxx", entityName, prefix),
		)
	}

	return sid, nil
}

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(n), nil
}
