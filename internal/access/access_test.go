package access_test

import (
	"testing"

	"task-tracker-app/internal/access"
	"task-tracker-app/internal/model"
)

var (
	taskU1R1 = model.Task{ID: "1", OwnerID: "u1", ReporterID: "r1"}
	taskU2R1 = model.Task{ID: "2", OwnerID: "u2", ReporterID: "r1"}
	taskU1R2 = model.Task{ID: "3", OwnerID: "u1", ReporterID: "r2"}
	taskNone = model.Task{ID: "4"}
)

func TestIsVisible(t *testing.T) {
	admin := model.Viewer{UserID: "a1", Role: model.RoleAdmin, IsActive: true}
	user := model.Viewer{UserID: "u1", Role: model.RoleUser, IsActive: true}

	tests := []struct {
		name   string
		task   model.Task
		viewer model.Viewer
		scope  model.ScopeFilter
		want   bool
	}{
		{name: "Admin no scope sees other owner", task: taskU2R1, viewer: admin, want: true},
		{name: "Admin no scope sees ownerless task", task: taskNone, viewer: admin, want: true},
		{name: "Admin user scope match", task: taskU1R1, viewer: admin, scope: model.ScopeFilter{SelectedUserID: "u1"}, want: true},
		{name: "Admin user scope miss", task: taskU2R1, viewer: admin, scope: model.ScopeFilter{SelectedUserID: "u1"}, want: false},
		{name: "Admin reporter scope ignores ownership", task: taskU2R1, viewer: admin, scope: model.ScopeFilter{SelectedReporterID: "r1"}, want: true},
		{name: "Admin reporter scope miss", task: taskU1R2, viewer: admin, scope: model.ScopeFilter{SelectedReporterID: "r1"}, want: false},
		{name: "Admin both scopes match", task: taskU1R1, viewer: admin, scope: model.ScopeFilter{SelectedUserID: "u1", SelectedReporterID: "r1"}, want: true},
		{name: "Admin both scopes reporter miss", task: taskU1R2, viewer: admin, scope: model.ScopeFilter{SelectedUserID: "u1", SelectedReporterID: "r1"}, want: false},
		{name: "Admin scope trims ids", task: taskU1R1, viewer: admin, scope: model.ScopeFilter{SelectedUserID: " u1 "}, want: true},
		{name: "Admin scope does not match missing reporter", task: taskNone, viewer: admin, scope: model.ScopeFilter{SelectedReporterID: "r1"}, want: false},
		{name: "Admin role is case-insensitive", task: taskU2R1, viewer: model.Viewer{Role: "Admin", IsActive: true}, want: true},
		{name: "User sees own task", task: taskU1R1, viewer: user, want: true},
		{name: "User never sees others", task: taskU2R1, viewer: user, want: false},
		{name: "User selected user is ignored", task: taskU2R1, viewer: user, scope: model.ScopeFilter{SelectedUserID: "u2"}, want: false},
		{name: "User reporter scope match", task: taskU1R1, viewer: user, scope: model.ScopeFilter{SelectedReporterID: "r1"}, want: true},
		{name: "User reporter scope miss", task: taskU1R2, viewer: user, scope: model.ScopeFilter{SelectedReporterID: "r1"}, want: false},
		{name: "User without id sees nothing", task: taskNone, viewer: model.Viewer{Role: model.RoleUser, IsActive: true}, want: false},
		{name: "Unknown role fails closed", task: taskU1R1, viewer: model.Viewer{UserID: "u1", Role: "manager", IsActive: true}, want: false},
		{name: "Empty role fails closed", task: taskU1R1, viewer: model.Viewer{UserID: "u1", IsActive: true}, want: false},
		{name: "Inactive admin", task: taskU1R1, viewer: model.Viewer{Role: model.RoleAdmin}, want: false},
		{name: "Inactive owner", task: taskU1R1, viewer: model.Viewer{UserID: "u1", Role: model.RoleUser}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := access.IsVisible(tt.task, tt.viewer, tt.scope); got != tt.want {
				t.Errorf("IsVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterScenarios(t *testing.T) {
	tasks := []model.Task{{ID: "1", OwnerID: "u1"}, {ID: "2", OwnerID: "u2"}}

	t.Run("Admin no scope", func(t *testing.T) {
		got := access.Filter(tasks, model.Viewer{Role: model.RoleAdmin, IsActive: true}, model.ScopeFilter{})
		if len(got) != 2 {
			t.Errorf("expected both tasks visible, got %d", len(got))
		}
	})

	t.Run("User self only", func(t *testing.T) {
		got := access.Filter(tasks, model.Viewer{Role: model.RoleUser, UserID: "u1", IsActive: true}, model.ScopeFilter{})
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("expected only task 1, got %+v", got)
		}
	})

	t.Run("Inactive viewer sees nothing", func(t *testing.T) {
		for _, role := range []model.Role{model.RoleAdmin, model.RoleUser, "other"} {
			got := access.Filter(tasks, model.Viewer{Role: role, UserID: "u1"}, model.ScopeFilter{})
			if len(got) != 0 {
				t.Errorf("role %s: expected no tasks, got %d", role, len(got))
			}
		}
	})
}

// For a fixed task and scope, visibility only shrinks from admin to user to inactive.
func TestVisibilityIsRoleMonotonic(t *testing.T) {
	tasks := []model.Task{taskU1R1, taskU2R1, taskU1R2, taskNone}
	scopes := []model.ScopeFilter{
		{},
		{SelectedReporterID: "r1"},
		{SelectedUserID: "u1"},
		{SelectedUserID: "u1", SelectedReporterID: "r2"},
	}

	for _, sc := range scopes {
		for _, task := range tasks {
			user := access.IsVisible(task, model.Viewer{UserID: "u1", Role: model.RoleUser, IsActive: true}, sc)
			if user && task.OwnerID != "u1" {
				t.Errorf("user saw task %s owned by %q", task.ID, task.OwnerID)
			}
			for _, role := range []model.Role{model.RoleAdmin, model.RoleUser} {
				if access.IsVisible(task, model.Viewer{UserID: "u1", Role: role}, sc) {
					t.Errorf("inactive %s saw task %s", role, task.ID)
				}
			}
		}
	}
}

func TestEffectiveScope(t *testing.T) {
	sc := model.ScopeFilter{SelectedUserID: " u2 ", SelectedReporterID: "r1"}

	got := access.EffectiveScope(model.Viewer{Role: model.RoleUser}, sc)
	if got.SelectedUserID != "" || got.SelectedReporterID != "r1" {
		t.Errorf("unexpected user scope: %+v", got)
	}

	got = access.EffectiveScope(model.Viewer{Role: model.RoleAdmin}, sc)
	if got.SelectedUserID != "u2" {
		t.Errorf("unexpected admin scope: %+v", got)
	}
}
