package remote

import (
	"fmt"
	"time"

	"questlog/internal/habit/repository"
	"questlog/pkg/log"
	pkgRemote "questlog/pkg/remote"
)

type implRepository struct {
	gw  pkgRemote.Gateway
	l   log.Logger
	loc *time.Location
}

// New creates a habit repository on top of the sync service gateway.
// loc interprets zone-less completion timestamps.
func New(gw pkgRemote.Gateway, l log.Logger, loc *time.Location) repository.RemoteRepository {
	if gw == nil {
		panic("habit/repository/remote: gateway is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{gw: gw, l: l, loc: loc}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("habit/repository/remote.%s", method)
}
