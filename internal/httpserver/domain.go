package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	goalHTTP "questlog/internal/goal/delivery/http"
	habitHTTP "questlog/internal/habit/delivery/http"
	notifyHTTP "questlog/internal/notify/delivery/http"
)

// Each domain follows the same steps: build the handler from its use case,
// then register its routes under the API group.

func (srv HTTPServer) setupGoalDomain(ctx context.Context, api *gin.RouterGroup) {
	h := goalHTTP.New(srv.l, srv.goalUC)
	goalHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Goal domain registered")
}

func (srv HTTPServer) setupHabitDomain(ctx context.Context, api *gin.RouterGroup) {
	h := habitHTTP.New(srv.l, srv.habitUC)
	habitHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Habit domain registered")
}

func (srv HTTPServer) setupNotifyDomain(ctx context.Context, api *gin.RouterGroup) {
	h := notifyHTTP.New(srv.l, srv.notifyUC)
	notifyHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Notify domain registered")
}
