// Package validation holds the format and domain checks applied at the
// presentation boundary, before the store is called. The store itself
// enforces no field-level rules.
package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// institutional email suffix accepted at registration
const emailSuffix = "@atu.edu.kz"

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("uni_email", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(strings.ToLower(fl.Field().String()), emailSuffix)
	})
}

// Violations maps a lowercased field name to the rule it broke.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Registration is the signup form.
type Registration struct {
	Username string `validate:"required,min=3,max=64"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
	Faculty  string `validate:"required"`
	Email    string `validate:"required,email,uni_email"`
	Phone    string `validate:"omitempty,min=7"`
}

// TripForm is the trip create/edit form.
type TripForm struct {
	Origin      string `validate:"required"`
	Destination string `validate:"required"`
	Seats       int    `validate:"required,min=1,max=8"`
	Price       int    `validate:"min=0"`
	Description string `validate:"max=500"`
}

// ReviewForm is the post-trip review form.
type ReviewForm struct {
	Rating  int    `validate:"required,min=1,max=5"`
	Comment string `validate:"max=500"`
}

// Check runs struct validation and flattens the result into Violations.
// A nil map means the input passed.
func Check(v any) Violations {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	out := Violations{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = fe.Tag()
		}
	} else {
		out["_"] = "invalid_input"
	}
	return out
}
