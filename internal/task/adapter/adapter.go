// Package adapter converts raw task records from task sources into the single
// canonical model.Task shape. Every field goes through pkg/normalize, so a
// malformed field degrades to its default instead of failing the record.
package adapter

import (
	"task-tracker-app/internal/model"
	"task-tracker-app/pkg/datemath"
	"task-tracker-app/pkg/normalize"
)

// Record is a raw task record as delivered by a task source.
type Record map[string]any

// nestedKey holds task fields in records written by older clients.
const nestedKey = "data_task"

// Field aliases, most specific first.
var (
	idKeys          = []string{"id", "taskId", "_id"}
	ownerKeys       = []string{"ownerId", "userUID", "userId", "createdBy"}
	reporterKeys    = []string{"reporterId", "reporterUID", "reporters"}
	createdAtKeys   = []string{"createdAt", "created_at", "timestamp"}
	updatedAtKeys   = []string{"updatedAt", "updated_at", "lastModified"}
	monthKeys       = []string{"monthId", "month_id"}
	hoursKeys       = []string{"hoursSpent", "timeInHours"}
	aiUsedKeys      = []string{"aiUsed"}
	aiHoursKeys     = []string{"aiHoursSpent", "aiTime"}
	reworkedKeys    = []string{"reworked", "isReworked"}
	marketKeys      = []string{"markets", "market"}
	productKeys     = []string{"product", "products"}
	aiModelKeys     = []string{"aiModels", "aiModel"}
	deliverableKeys = []string{"deliverables", "deliverable", "deliverableNames"}
)

// ToTask normalizes rec. The month id is derived from createdAt in cal's zone;
// without a timestamp a well-formed monthId field is kept.
func ToTask(rec Record, cal *datemath.Calendar) model.Task {
	loc := cal.Location()

	task := model.Task{
		ID:           RecordID(rec),
		OwnerID:      normalize.String(firstScalar(rec, ownerKeys)),
		ReporterID:   normalize.String(firstScalar(rec, reporterKeys)),
		HoursSpent:   normalize.NonNegative(lookup(rec, hoursKeys)),
		AIUsed:       normalize.Bool(lookup(rec, aiUsedKeys)),
		Reworked:     normalize.Bool(lookup(rec, reworkedKeys)),
		Markets:      normalize.Strings(lookup(rec, marketKeys)),
		Product:      normalize.String(firstScalar(rec, productKeys)),
		AIModels:     normalize.Strings(lookup(rec, aiModelKeys)),
		Deliverables: normalize.Strings(lookup(rec, deliverableKeys)),
	}

	if task.AIUsed {
		task.AIHoursSpent = normalize.NonNegative(lookup(rec, aiHoursKeys))
	}

	if t, ok := normalize.Time(lookup(rec, createdAtKeys), loc); ok {
		task.CreatedAt = t
		task.MonthID = cal.MonthID(t)
	} else if m := normalize.String(lookup(rec, monthKeys)); cal.ValidMonthID(m) {
		task.MonthID = m
	}

	if t, ok := normalize.Time(lookup(rec, updatedAtKeys), loc); ok {
		task.UpdatedAt = t
	}

	return task
}

// ToTasks normalizes every record, preserving order.
func ToTasks(recs []Record, cal *datemath.Calendar) []model.Task {
	out := make([]model.Task, 0, len(recs))
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		out = append(out, ToTask(rec, cal))
	}
	return out
}

// RecordID resolves the record's id, or "".
func RecordID(rec Record) string {
	return normalize.String(lookup(rec, idKeys))
}

// MonthOf returns the month a record belongs to, or "" when unknown.
func MonthOf(rec Record, cal *datemath.Calendar) string {
	return ToTask(rec, cal).MonthID
}

// lookup returns the first present alias at the top level, then inside the
// nested task object.
func lookup(rec Record, keys []string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	if nested, ok := rec[nestedKey].(map[string]any); ok {
		for _, k := range keys {
			if v, ok := nested[k]; ok && v != nil {
				return v
			}
		}
	}
	return nil
}

// firstScalar is lookup for single-valued fields that some sources send as a
// one-element list (e.g. reporters: ["r1"]).
func firstScalar(rec Record, keys []string) any {
	v := lookup(rec, keys)
	if list := normalize.Strings(v); len(list) > 0 {
		if _, isList := v.([]any); isList {
			return list[0]
		}
		if _, isList := v.([]string); isList {
			return list[0]
		}
	}
	return v
}
