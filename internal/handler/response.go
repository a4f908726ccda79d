package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"guestbook/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// rejectionResponse is returned when a submission breaks an admission rule.
type rejectionResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Error writes a JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
