// Package access decides which tasks a viewer may see.
//
// The decision order is fixed:
//  1. inactive viewers see nothing;
//  2. admins see everything, narrowed by the selected user and/or reporter;
//  3. users see only their own tasks, optionally narrowed by reporter;
//  4. any other role sees nothing.
//
// Admin reporter-only scope does not require ownership, while a user's reporter
// scope always applies on top of ownership. The two are intentionally not unified.
package access

import (
	"strings"

	"task-tracker-app/internal/model"
)

// IsVisible reports whether viewer may see task under scope. It is total:
// missing owner or reporter fields never match anything.
func IsVisible(task model.Task, viewer model.Viewer, scope model.ScopeFilter) bool {
	if !viewer.IsActive {
		return false
	}

	selectedUser := normalizeID(scope.SelectedUserID)
	selectedReporter := normalizeID(scope.SelectedReporterID)

	switch model.ParseRole(string(viewer.Role)) {
	case model.RoleAdmin:
		switch {
		case selectedUser != "" && selectedReporter != "":
			return matches(task.OwnerID, selectedUser) && matches(task.ReporterID, selectedReporter)
		case selectedUser != "":
			return matches(task.OwnerID, selectedUser)
		case selectedReporter != "":
			return matches(task.ReporterID, selectedReporter)
		default:
			return true
		}

	case model.RoleUser:
		if !matches(task.OwnerID, normalizeID(viewer.UserID)) {
			return false
		}
		if selectedReporter != "" {
			return matches(task.ReporterID, selectedReporter)
		}
		return true

	default:
		return false
	}
}

// Filter returns the tasks viewer may see, preserving input order.
func Filter(tasks []model.Task, viewer model.Viewer, scope model.ScopeFilter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	if !viewer.IsActive {
		return out
	}
	for _, t := range tasks {
		if IsVisible(t, viewer, scope) {
			out = append(out, t)
		}
	}
	return out
}

// EffectiveScope drops scope fields a viewer cannot use. A user's selected user
// is ignored since users are always pinned to themselves.
func EffectiveScope(viewer model.Viewer, scope model.ScopeFilter) model.ScopeFilter {
	out := model.ScopeFilter{
		SelectedUserID:     normalizeID(scope.SelectedUserID),
		SelectedReporterID: normalizeID(scope.SelectedReporterID),
	}
	if model.ParseRole(string(viewer.Role)) != model.RoleAdmin {
		out.SelectedUserID = ""
	}
	return out
}

func matches(field, want string) bool {
	field = normalizeID(field)
	return field != "" && want != "" && field == want
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
