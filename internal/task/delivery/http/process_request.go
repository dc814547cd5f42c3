package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	pkgErrors "task-tracker-app/pkg/errors"
)

// processScopedReq binds the month and scope query parameters.
func (h *handler) processScopedReq(c *gin.Context) (scopedReq, error) {
	var req scopedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, badRequest(req.validate())
}

// processRangeReq binds and validates the range query parameters.
func (h *handler) processRangeReq(c *gin.Context) (rangeReq, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, badRequest(err)
	}
	return req, badRequest(req.validate())
}

// processInvalidateReq binds the optional invalidate body.
func (h *handler) processInvalidateReq(c *gin.Context) (invalidateReq, error) {
	var req invalidateReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, badRequest(err)
	}
	return req, badRequest(req.validate())
}

func badRequest(err error) error {
	if err == nil {
		return nil
	}
	return pkgErrors.NewHTTPError(pkgErrors.ErrBadRequest.StatusCode, fmt.Sprintf("%s: %v", pkgErrors.ErrBadRequest.Message, err))
}
