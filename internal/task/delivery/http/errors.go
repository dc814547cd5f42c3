package http

import (
	"errors"
	"net/http"

	"task-tracker-app/internal/task"
	pkgErrors "task-tracker-app/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidMonth):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskSourceUnavailable):
		return pkgErrors.ErrServiceUnavailable
	default:
		return pkgErrors.ErrInternalServerError
	}
}
