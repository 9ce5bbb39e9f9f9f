// Package handlers wires the marketplace services to the HTTP surface. The
// handlers are thin glue: bind, call a service, map the outcome to the
// response envelope.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jananikuppan04-sys/Campus-Cart/docstore"
	"github.com/jananikuppan04-sys/Campus-Cart/internal/marketplace"
	"github.com/jananikuppan04-sys/Campus-Cart/pkg/logger"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func okCount(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// failFor maps service errors to status codes so clients can branch on
// cause. Unrecognized errors are store or internal failures and surface as
// a 500 without leaking detail.
func failFor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, docstore.ErrNotFound),
		errors.Is(err, marketplace.ErrProductNotFound),
		errors.Is(err, marketplace.ErrItemNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, marketplace.ErrEmptyCart),
		errors.Is(err, marketplace.ErrInsufficientStock),
		errors.Is(err, marketplace.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, marketplace.ErrInvalidCredentials),
		errors.Is(err, marketplace.ErrNotOwner):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, marketplace.ErrEmailTaken):
		fail(c, http.StatusConflict, err.Error())
	default:
		logger.Errorf("request failed: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
	}
}
