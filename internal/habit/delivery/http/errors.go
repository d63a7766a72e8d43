package http

import (
	"context"
	"errors"
	"net/http"

	"questlog/internal/habit"
	pkgErrors "questlog/pkg/errors"
	pkgRemote "questlog/pkg/remote"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errRolledBack = pkgErrors.NewHTTPError(http.StatusConflict, "change was rolled back")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, habit.ErrHabitNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, habit.ErrInvalidName),
		errors.Is(err, habit.ErrInvalidResetOption),
		errors.Is(err, habit.ErrInvalidTimeOfDay):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, pkgRemote.ErrRejected):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "request ended before the sync service answered")
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "sync service unavailable")
	}
}
