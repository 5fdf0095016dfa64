package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam reads a numeric path parameter. On failure it answers 400 with
// "Invalid <label> ID" and returns false.
func uintParam(c *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 10

	if pageParam := c.Query("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			page = p
		}
	}

	if sizeParam := c.Query("pageSize"); sizeParam != "" {
		if ps, err := strconv.Atoi(sizeParam); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}

	return page, pageSize
}
