// File: /middleware/pagination.go
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginationDefaults fills in offset and limit when absent and caps limit at
// maxLimit. Values that are not integers are left for the handler to reject.
func PaginationDefaults(defaultLimit, maxLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()

		if query.Get("offset") == "" {
			query.Set("offset", "0")
		}
		if query.Get("limit") == "" {
			query.Set("limit", strconv.Itoa(defaultLimit))
		}
		if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > maxLimit {
			query.Set("limit", strconv.Itoa(maxLimit))
		}

		c.Request.URL.RawQuery = query.Encode()
		c.Next()
	}
}
