package httpserver

import (
	"github.com/gin-gonic/gin"

	"questlog/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "questlog"
)

type statusResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

type readyResp struct {
	statusResp
	Goals         int `json:"goals"`
	Habits        int `json:"habits"`
	PendingWrites int `json:"pending_writes"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusResp{Status: "healthy", Service: ServiceName, Version: HealthVersion})
}

// readyCheck reports how much local state is tracked and how many remote
// writes are still unresolved.
// @Summary Readiness Check
// @Description Counts tracked goals, habits and unresolved writes
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	goals, err := srv.goalUC.List(ctx)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	habits, err := srv.habitUC.List(ctx)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	resp := readyResp{
		statusResp: statusResp{Status: "ready", Service: ServiceName},
		Goals:      len(goals.Goals),
		Habits:     len(habits.Habits),
	}
	for _, v := range goals.Goals {
		resp.PendingWrites += v.Pending
	}
	for _, v := range habits.Habits {
		resp.PendingWrites += v.Pending
	}
	response.OK(c, resp)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusResp{Status: "alive", Service: ServiceName, Version: HealthVersion})
}
