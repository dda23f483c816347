package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form input for the three POST surfaces. Validation rules live in the
// binding tags and are enforced by gin's validator on ShouldBind.

type PollForm struct {
	Question string   `form:"question" binding:"required,max=200"`
	Options  []string `form:"options" binding:"required,min=2,max=5,dive,required,max=100"`
}

type RegisterForm struct {
	Username        string `form:"username" binding:"required,min=4,max=25"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Normalize strips surrounding whitespace from the username. Callers
// must re-validate afterwards: a padded username can shrink below the
// length minimum.
func (f *RegisterForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
}

// FieldErrors flattens a binding error into per-field messages keyed by
// the form field name. Unrecognized errors (malformed bodies, type
// mismatches) collapse into a single "form" entry.
func FieldErrors(err error) map[string]string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "Invalid form submission."}
	}

	out := make(map[string]string, len(errs))

	for _, e := range errs {
		field := fieldName(e)
		if _, exists := out[field]; exists {
			continue // keep the first message per field
		}
		out[field] = message(e)
	}

	return out
}

func fieldName(e validator.FieldError) string {
	name := e.Field()

	// Dive errors on the options list report as Options[i]; all of them
	// belong to the options field.
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	switch name {
	case "ConfirmPassword":
		return "confirm_password"
	default:
		return strings.ToLower(name)
	}
}

func message(e validator.FieldError) string {
	isList := e.Kind().String() == "slice"

	switch e.Tag() {
	case "required":
		return "This field is required."
	case "min":
		if isList {
			return fmt.Sprintf("Provide at least %s options.", e.Param())
		}
		return fmt.Sprintf("Must be at least %s characters long.", e.Param())
	case "max":
		if isList {
			return fmt.Sprintf("Provide at most %s options.", e.Param())
		}
		return fmt.Sprintf("Must be at most %s characters long.", e.Param())
	case "eqfield":
		return "Passwords must match."
	default:
		return "Invalid value."
	}
}
