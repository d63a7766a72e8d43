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

func (h *handler) processPolicyReq(c *gin.Context) (policyReq, error) {
	var req policyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errWrongBody
	}
	req.ID = c.Param("id")
	return req, nil
}
