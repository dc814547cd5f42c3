package http

import (
	"github.com/gin-gonic/gin"

	"task-tracker-app/internal/middleware"
	"task-tracker-app/pkg/response"
)

// Metrics godoc
// @Summary     Monthly task metrics
// @Description Aggregates the caller's visible tasks for one month.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       month       query string false "YYYY-MM or relative expression (default: current month)"
// @Param       user_id     query string false "Narrow to one owner (admins only)"
// @Param       reporter_id query string false "Narrow to one reporter"
// @Success     200 {object} metricsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task source unavailable"
// @Router      /api/v1/tasks/metrics [GET]
func (h *handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()

	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processScopedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Metrics(ctx, viewer, req.toMetricsInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Metrics: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMetricsResp(output))
}

// RangeMetrics godoc
// @Summary     Task metrics over a month range
// @Description Aggregates each month of an inclusive range (at most 12 months) and their sum.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       from        query string true  "First month, YYYY-MM"
// @Param       to          query string false "Last month, YYYY-MM (default: from)"
// @Param       user_id     query string false "Narrow to one owner (admins only)"
// @Param       reporter_id query string false "Narrow to one reporter"
// @Success     200 {object} rangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task source unavailable"
// @Router      /api/v1/tasks/metrics/range [GET]
func (h *handler) RangeMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RangeMetrics(ctx, viewer, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.RangeMetrics: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRangeResp(output))
}

// Weeks godoc
// @Summary     Weekly breakdown of a month
// @Description Lists the month's Monday-Friday business weeks with per-week metrics.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       month       query string false "YYYY-MM or relative expression (default: current month)"
// @Param       user_id     query string false "Narrow to one owner (admins only)"
// @Param       reporter_id query string false "Narrow to one reporter"
// @Success     200 {object} weeksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task source unavailable"
// @Router      /api/v1/tasks/weeks [GET]
func (h *handler) Weeks(c *gin.Context) {
	ctx := c.Request.Context()

	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processScopedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Weeks(ctx, viewer, req.toWeeksInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Weeks: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newWeeksResp(output))
}

// List godoc
// @Summary     Visible tasks of a month
// @Description Returns the normalized tasks the caller may see for one month.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       month       query string false "YYYY-MM or relative expression (default: current month)"
// @Param       user_id     query string false "Narrow to one owner (admins only)"
// @Param       reporter_id query string false "Narrow to one reporter"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Task source unavailable"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	viewer, ok := middleware.GetViewer(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processScopedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, viewer, req.toListInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Invalidate godoc
// @Summary     Invalidate cached metrics
// @Description Drops cached aggregates for one month, or all of them when month is empty. Admin only.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body invalidateReq false "Month to invalidate"
// @Success     200 {object} invalidateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/tasks/cache/invalidate [POST]
func (h *handler) Invalidate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInvalidateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Invalidate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Invalidate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, invalidateResp{Removed: output.Removed})
}
