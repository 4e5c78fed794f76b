package handler

import (
	"errors"
	"net/http"
	"strconv"

	"storehub/internal/apierror"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body. Validation tags are enforced in the
// service layer; this only rejects malformed JSON. Returns false and
// writes the error response on failure — the caller should return
// immediately without writing another response.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return true
}

// pathID parses the :id path parameter. Writes a 400 and returns false on
// a non-numeric id.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return id, true
}

// respondError maps service-layer errors onto HTTP statuses. Unrecognized
// errors land on the context for the ErrorHandler middleware to log and
// turn into a 500.
func respondError(c *gin.Context, err error) {
	var fields apierror.FieldErrors
	switch {
	case errors.As(err, &fields):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
	case errors.Is(err, apierror.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, apierror.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
	default:
		_ = c.Error(err)
	}
}
