package http

import (
	"questlog/internal/habit"
	"questlog/pkg/log"
)

type handler struct {
	l  log.Logger
	uc habit.UseCase
}

// New creates a new HTTP handler for the habit domain.
func New(l log.Logger, uc habit.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
