package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// Custom tag names
const (
	TagPlayerClass = "player_class"
	TagRunStyle    = "run_style"
	TagPlaystyle   = "playstyle"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	once             sync.Once
)

// New builds a validator with the custom tags registered.
// Field names in errors use the json tag so callers see the wire names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagPlayerClass, validatePlayerClass)
	_ = v.RegisterValidation(TagRunStyle, validateRunStyle)
	_ = v.RegisterValidation(TagPlaystyle, validatePlaystyle)

	return &Validator{validate: v}
}

// Default returns the shared validator instance
func Default() *Validator {
	once.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateInput checks a CalculatorInput and wraps failures in domain.ErrInvalidInput
func (v *Validator) ValidateInput(input domain.CalculatorInput) error {
	if err := v.ValidateStruct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, Summary(err))
	}
	return nil
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagPlayerClass:
			errs[field] = "Unknown player class"
		case TagRunStyle:
			errs[field] = "Must be one of: safe balanced greedy"
		case TagPlaystyle:
			errs[field] = "Must be one of: steady combat runner support"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "gtfield":
			errs[field] = fmt.Sprintf("Must be greater than %s", jsonFieldName(e))
		case "min", "gte":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max", "lte":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Summary renders validation errors as a single sorted line
func Summary(err error) string {
	fields := FormatValidationError(err)
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	slices.Sort(parts)
	return strings.Join(parts, "; ")
}

// jsonFieldName maps a gtfield param (a Go field name) to its wire name
func jsonFieldName(e validator.FieldError) string {
	switch e.Param() {
	case "CurrentFloor":
		return "current_floor"
	default:
		return e.Param()
	}
}

func validatePlayerClass(fl validator.FieldLevel) bool {
	return domain.IsKnownClass(domain.PlayerClass(fl.Field().String()))
}

func validateRunStyle(fl validator.FieldLevel) bool {
	style := domain.RunStyle(strings.ToLower(fl.Field().String()))
	return slices.Contains(domain.RunStyles, style)
}

func validatePlaystyle(fl validator.FieldLevel) bool {
	style := domain.Playstyle(strings.ToLower(fl.Field().String()))
	return slices.Contains(domain.Playstyles, style)
}
