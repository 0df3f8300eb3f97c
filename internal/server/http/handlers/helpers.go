package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ChristianPavilonis/orderdesk/internal/domain/errors"
)

// Error bodies are fixed strings so clients can match on them; store failures
// deliberately carry no internal detail.
const (
	notFoundBody    = "404 Record not found"
	serverErrorBody = "Something went wrong!"
)

// respondError maps a facade failure onto the error contract: a missing
// record becomes 404, anything else 500.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrNotFound) {
		c.String(http.StatusNotFound, notFoundBody)
		return
	}
	c.String(http.StatusInternalServerError, serverErrorBody)
}

// orderID extracts the numeric identifier from the route path. A non-integer
// segment ends the request with 400.
func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
