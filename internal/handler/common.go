// Package handler translates HTTP requests into service calls.
package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID parses a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// parsePaging reads the from/size query parameters with the documented
// defaults (0/10). Only non-numeric values fail here; out-of-range values
// pass through so the pagination constructor reports the offending bound.
func parsePaging(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return 0, 0, fmt.Errorf("from must be a number")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return 0, 0, fmt.Errorf("size must be a number")
	}
	return from, size, nil
}
