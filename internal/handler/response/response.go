// Package response maps service results and domain errors onto the wire.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/welderdefender/share-it/internal/domain"
)

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 200 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusOK)
}

// BadRequest writes a 400 with the error envelope.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a domain error kind to its status code. Not-found covers both
// true absence and disguised authorization failures; unsupported filter and
// pagination errors are always client errors. Anything unclassified is a 500
// with a generic message.
func Error(c *gin.Context, err error) {
	kind, ok := domain.KindOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindInvalidRequest, domain.KindPagination, domain.KindUnsupportedFilter:
		status = http.StatusBadRequest
	case domain.KindNoAccess:
		status = http.StatusForbidden
	case domain.KindConflict:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
