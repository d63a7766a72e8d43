package http

import (
	"errors"
	"net/http"

	"questlog/internal/notify"
	pkgErrors "questlog/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notify.ErrNotificationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "notification not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
