package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"coursify/internal/errors"
)

// respondError translates a domain error into its HTTP status and body shape.
func respondError(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.Body())
}

// badRequest renders a 400 with the list-shaped error body.
func badRequest(c echo.Context, messages ...string) error {
	if len(messages) == 0 {
		messages = []string{"Bad Request."}
	}
	return c.JSON(http.StatusBadRequest, errors.ErrorsResponse{Errors: messages})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
