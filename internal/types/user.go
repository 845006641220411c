package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// User is the session identity. Login is a name-only stub: there is no
// password and no account record, just a trimmed display name held for
// the session and cleared at logout.
type User struct {
	Name string `json:"name"`
}

// NewUser creates a User from a raw name, trimming whitespace.
// Returns false if the name is empty after trimming.
func NewUser(name string) (User, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return User{}, false
	}
	return User{Name: trimmed}, true
}

// LoginRequest is the payload for session creation.
type LoginRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeRequest is the JSON payload for text/skill-list analysis.
// Exactly one of Text or Skills must be set; handlers enforce the
// exclusivity, the tags enforce the shape.
type AnalyzeRequest struct {
	Text   string   `json:"text,omitempty" validate:"omitempty,min=1"`
	Skills []string `json:"skills,omitempty" validate:"omitempty,min=1,dive,min=1"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
