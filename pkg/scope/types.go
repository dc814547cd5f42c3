package scope

import (
	"github.com/golang-jwt/jwt/v5"

	"task-tracker-app/internal/model"
)

// Payload is the claim set of a viewer token. The subject is the user id.
type Payload struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	Active *bool  `json:"active,omitempty"`
}

// Viewer converts the payload into the viewer identity. A token without an
// explicit active flag is treated as active.
func (p Payload) Viewer() model.Viewer {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	return model.Viewer{
		UserID:   p.Subject,
		Role:     model.ParseRole(p.Role),
		IsActive: active,
	}
}
