package http

import (
	"strings"
	"time"

	"task-tracker-app/internal/analytics"
	"task-tracker-app/internal/model"
	"task-tracker-app/internal/task"
	"task-tracker-app/pkg/response"
)

// --- Request DTOs ---

type scopedReq struct {
	Month      string `form:"month"`
	UserID     string `form:"user_id"`
	ReporterID string `form:"reporter_id"`
}

func (r scopedReq) validate() error { return nil }

func (r scopedReq) scope() model.ScopeFilter {
	return model.ScopeFilter{
		SelectedUserID:     strings.TrimSpace(r.UserID),
		SelectedReporterID: strings.TrimSpace(r.ReporterID),
	}
}

func (r scopedReq) toMetricsInput() task.MetricsInput {
	return task.MetricsInput{MonthID: strings.TrimSpace(r.Month), Scope: r.scope()}
}

func (r scopedReq) toWeeksInput() task.WeeksInput {
	return task.WeeksInput{MonthID: strings.TrimSpace(r.Month), Scope: r.scope()}
}

func (r scopedReq) toListInput() task.ListInput {
	return task.ListInput{MonthID: strings.TrimSpace(r.Month), Scope: r.scope()}
}

// ---

type rangeReq struct {
	From       string `form:"from" binding:"required"`
	To         string `form:"to"`
	UserID     string `form:"user_id"`
	ReporterID string `form:"reporter_id"`
}

func (r rangeReq) validate() error { return nil }

func (r rangeReq) toInput() task.RangeMetricsInput {
	return task.RangeMetricsInput{
		FromMonthID: strings.TrimSpace(r.From),
		ToMonthID:   strings.TrimSpace(r.To),
		Scope: model.ScopeFilter{
			SelectedUserID:     strings.TrimSpace(r.UserID),
			SelectedReporterID: strings.TrimSpace(r.ReporterID),
		},
	}
}

// ---

type invalidateReq struct {
	Month string `json:"month"`
}

func (r invalidateReq) validate() error { return nil }

func (r invalidateReq) toInput() task.InvalidateInput {
	return task.InvalidateInput{MonthID: strings.TrimSpace(r.Month)}
}

// --- Response DTOs ---

type metricsResp struct {
	Month        string                    `json:"month"`
	Fingerprint  string                    `json:"fingerprint"`
	ComputedAt   response.DateTime         `json:"computed_at"`
	Cached       bool                      `json:"cached"`
	AIHoursShare float64                   `json:"ai_hours_share"`
	ReworkRate   float64                   `json:"rework_rate"`
	Result       analytics.AggregateResult `json:"result"`
}

func newMetricsResp(out task.MetricsOutput) metricsResp {
	return metricsResp{
		Month:        out.MonthID,
		Fingerprint:  out.Fingerprint,
		ComputedAt:   response.DateTime(out.ComputedAt),
		Cached:       out.Cached,
		AIHoursShare: out.Result.AIHoursShare(),
		ReworkRate:   out.Result.ReworkRate(),
		Result:       out.Result,
	}
}

func (h *handler) newMetricsResp(out task.MetricsOutput) metricsResp {
	return newMetricsResp(out)
}

type rangeResp struct {
	From         string                    `json:"from"`
	To           string                    `json:"to"`
	AIHoursShare float64                   `json:"ai_hours_share"`
	ReworkRate   float64                   `json:"rework_rate"`
	Result       analytics.AggregateResult `json:"result"`
	Months       []metricsResp             `json:"months"`
}

func (h *handler) newRangeResp(out task.RangeMetricsOutput) rangeResp {
	months := make([]metricsResp, len(out.Months))
	for i, m := range out.Months {
		months[i] = newMetricsResp(m)
	}
	return rangeResp{
		From:         out.FromMonthID,
		To:           out.ToMonthID,
		AIHoursShare: out.Result.AIHoursShare(),
		ReworkRate:   out.Result.ReworkRate(),
		Result:       out.Result,
		Months:       months,
	}
}

type weekResp struct {
	WeekNumber   int                       `json:"week_number"`
	StartDate    response.Date             `json:"start_date"`
	EndDate      response.Date             `json:"end_date"`
	BusinessDays []response.Date           `json:"business_days"`
	Result       analytics.AggregateResult `json:"result"`
}

type weeksResp struct {
	Month             string     `json:"month"`
	CurrentWeekNumber int        `json:"current_week_number"`
	Cached            bool       `json:"cached"`
	Weeks             []weekResp `json:"weeks"`
}

func (h *handler) newWeeksResp(out task.WeeksOutput) weeksResp {
	weeks := make([]weekResp, len(out.Weeks))
	for i, w := range out.Weeks {
		weeks[i] = weekResp{
			WeekNumber:   w.Week.WeekNumber,
			StartDate:    response.Date(w.Week.StartDate),
			EndDate:      response.Date(w.Week.EndDate),
			BusinessDays: response.Dates(w.Week.BusinessDays),
			Result:       w.Result,
		}
	}
	return weeksResp{
		Month:             out.MonthID,
		CurrentWeekNumber: out.CurrentWeekNumber,
		Cached:            out.Cached,
		Weeks:             weeks,
	}
}

type taskResp struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	ReporterID   string     `json:"reporter_id,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	MonthID      string     `json:"month_id"`
	HoursSpent   float64    `json:"hours_spent"`
	AIUsed       bool       `json:"ai_used"`
	AIHoursSpent float64    `json:"ai_hours_spent"`
	Reworked     bool       `json:"reworked"`
	Markets      []string   `json:"markets"`
	Product      string     `json:"product,omitempty"`
	AIModels     []string   `json:"ai_models"`
	Deliverables []string   `json:"deliverables"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		ReporterID:   t.ReporterID,
		MonthID:      t.MonthID,
		HoursSpent:   t.HoursSpent,
		AIUsed:       t.AIUsed,
		AIHoursSpent: t.AIHoursSpent,
		Reworked:     t.Reworked,
		Markets:      nonNil(t.Markets),
		Product:      t.Product,
		AIModels:     nonNil(t.AIModels),
		Deliverables: nonNil(t.Deliverables),
	}
	if t.HasTimestamp() {
		createdAt := t.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

type listResp struct {
	Month string     `json:"month"`
	Count int        `json:"count"`
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Month: out.MonthID,
		Count: out.Count,
		Tasks: tasks,
	}
}

type invalidateResp struct {
	Removed int `json:"removed"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
