package adapter_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"task-tracker-app/internal/task/adapter"
	"task-tracker-app/pkg/datemath"
)

func TestToTask(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	t.Run("Canonical record", func(t *testing.T) {
		rec := adapter.Record{
			"id":           "t1",
			"ownerId":      "u1",
			"reporterId":   "r1",
			"createdAt":    "2024-05-31T10:00:00Z",
			"updatedAt":    float64(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC).UnixMilli()),
			"hoursSpent":   2.5,
			"aiUsed":       true,
			"aiHoursSpent": "1",
			"reworked":     false,
			"markets":      []any{"ro", "com"},
			"product":      "marketing",
			"aiModels":     []any{"gpt"},
			"deliverables": []any{"banner"},
		}

		task := adapter.ToTask(rec, cal)
		if task.ID != "t1" || task.OwnerID != "u1" || task.ReporterID != "r1" {
			t.Errorf("unexpected identity fields: %+v", task)
		}
		if task.MonthID != "2024-05" {
			t.Errorf("MonthID = %s, want 2024-05", task.MonthID)
		}
		if task.HoursSpent != 2.5 || !task.AIUsed || task.AIHoursSpent != 1 {
			t.Errorf("unexpected metric fields: %+v", task)
		}
		if !reflect.DeepEqual(task.Markets, []string{"ro", "com"}) || task.Product != "marketing" {
			t.Errorf("unexpected categories: %+v", task)
		}
		if task.UpdatedAt.IsZero() {
			t.Errorf("expected updatedAt parsed from epoch millis")
		}
	})

	t.Run("Historical aliases", func(t *testing.T) {
		rec := adapter.Record{
			"taskId":      "t2",
			"userUID":     "u2",
			"reporters":   []any{"r9"},
			"timestamp":   json.Number("1714557600000"), // 2024-05-01T10:00:00Z
			"timeInHours": "3",
			"aiUsed":      "true",
			"aiTime":      0.5,
			"isReworked":  1,
			"market":      "ro",
			"aiModel":     "midjourney",
			"deliverable": "video",
		}

		task := adapter.ToTask(rec, cal)
		if task.ID != "t2" || task.OwnerID != "u2" || task.ReporterID != "r9" {
			t.Errorf("unexpected identity fields: %+v", task)
		}
		if task.MonthID != "2024-05" || task.HoursSpent != 3 || task.AIHoursSpent != 0.5 || !task.Reworked {
			t.Errorf("unexpected fields: %+v", task)
		}
		if !reflect.DeepEqual(task.Markets, []string{"ro"}) || !reflect.DeepEqual(task.AIModels, []string{"midjourney"}) {
			t.Errorf("expected scalar aliases to become sets: %+v", task)
		}
		if !reflect.DeepEqual(task.Deliverables, []string{"video"}) {
			t.Errorf("unexpected deliverables: %+v", task.Deliverables)
		}
	})

	t.Run("Nested task object", func(t *testing.T) {
		rec := adapter.Record{
			"id":      "t3",
			"userUID": "u3",
			"createdAt": map[string]any{
				"seconds":     float64(time.Date(2024, 4, 30, 8, 0, 0, 0, time.UTC).Unix()),
				"nanoseconds": float64(0),
			},
			"data_task": map[string]any{
				"timeInHours": 4,
				"markets":     []any{"com"},
				"products":    "acquisition",
				"userUID":     "ignored",
			},
		}

		task := adapter.ToTask(rec, cal)
		if task.OwnerID != "u3" {
			t.Errorf("expected top-level field to win, got %q", task.OwnerID)
		}
		if task.HoursSpent != 4 || task.Product != "acquisition" || task.MonthID != "2024-04" {
			t.Errorf("unexpected nested fields: %+v", task)
		}
	})

	t.Run("Malformed fields degrade", func(t *testing.T) {
		rec := adapter.Record{
			"id":           7,
			"createdAt":    "yesterday-ish",
			"monthId":      "2024-02",
			"hoursSpent":   "n/a",
			"aiUsed":       false,
			"aiHoursSpent": 3, // ignored without AI use
			"markets":      map[string]any{"ro": true},
		}

		task := adapter.ToTask(rec, cal)
		if task.ID != "7" {
			t.Errorf("expected numeric id stringified, got %q", task.ID)
		}
		if task.HasTimestamp() {
			t.Errorf("expected no timestamp")
		}
		if task.MonthID != "2024-02" {
			t.Errorf("expected monthId field kept without timestamp, got %q", task.MonthID)
		}
		if task.HoursSpent != 0 || task.AIHoursSpent != 0 {
			t.Errorf("expected hours defaulted to 0: %+v", task)
		}
		if len(task.Markets) != 0 {
			t.Errorf("expected malformed markets dropped, got %v", task.Markets)
		}
	})

	t.Run("Derived month wins over stale field", func(t *testing.T) {
		rec := adapter.Record{"id": "t4", "createdAt": "2024-03-10T00:00:00Z", "monthId": "2024-01"}
		if got := adapter.MonthOf(rec, cal); got != "2024-03" {
			t.Errorf("MonthOf() = %s, want 2024-03", got)
		}
	})

	t.Run("Invalid month field without timestamp", func(t *testing.T) {
		rec := adapter.Record{"id": "t5", "monthId": "May"}
		if got := adapter.MonthOf(rec, cal); got != "" {
			t.Errorf("MonthOf() = %q, want empty", got)
		}
	})
}

func TestToTasksSkipsNilRecords(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	tasks := adapter.ToTasks([]adapter.Record{{"id": "a"}, nil, {"id": "b"}}, cal)
	if len(tasks) != 2 || tasks[0].ID != "a" || tasks[1].ID != "b" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}
