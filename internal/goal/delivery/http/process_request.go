package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	return req, nil
}

func (h *handler) processProgressReq(c *gin.Context) (progressReq, error) {
	var req progressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processSubtaskReq(c *gin.Context) (subtaskReq, error) {
	var req subtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}

func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongBody
	}
	return req, nil
}
