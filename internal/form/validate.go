// Package form validates the volunteer sign-up form.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/rsilvagit/ajudaja/internal/model"
)

// Field names used as FormErrors keys.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldArea         = "area"
	FieldAvailability = "availability"
	FieldMessage      = "message"
)

// emailShape is a loose "something@something.something" check, not RFC 5322.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

var messages = map[string]map[string]string{
	FieldName:         {"notblank": "Nome é obrigatório"},
	FieldEmail:        {"notblank": "Email é obrigatório", "emailshape": "Email inválido"},
	FieldPhone:        {"notblank": "Telefone é obrigatório"},
	FieldAvailability: {"notblank": "Disponibilidade é obrigatória"},
}

// submission mirrors model.VolunteerForm with validation rules attached.
// Tags are evaluated left to right and stop at the first failure, so an
// empty email reports "required" rather than "invalid".
type submission struct {
	Name         string `json:"name" validate:"notblank"`
	Email        string `json:"email" validate:"notblank,emailshape"`
	Phone        string `json:"phone" validate:"notblank"`
	Area         string `json:"area"`
	Availability string `json:"availability" validate:"notblank"`
	Message      string `json:"message"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate checks every rule and returns the failing fields. An empty result
// means the form can be submitted.
func Validate(f model.VolunteerForm) model.FormErrors {
	errs := model.FormErrors{}

	err := validate.Struct(submission(f))
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs
	}
	for _, fe := range fieldErrs {
		field := fe.Field()
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = "Campo inválido"
		}
		errs[field] = msg
	}
	return errs
}
