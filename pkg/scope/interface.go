package scope

import "task-tracker-app/internal/model"

// Manager issues and verifies viewer tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(viewer model.Viewer) (string, error)
}
