package http

import (
	"questlog/internal/notify"
	"questlog/pkg/log"
)

type handler struct {
	l  log.Logger
	uc notify.UseCase
}

// New creates a new HTTP handler for the notification feed.
func New(l log.Logger, uc notify.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
