package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"relief-hub/app/domain"
)

// Validator wraps the go-playground validator with custom rules
type Validator struct {
	validator *validator.Validate
}

// New creates a new validator instance with custom rules
func New() *Validator {
	validate := validator.New()

	// Register custom validators
	registerCustomValidators(validate)

	// Use form field names for validation error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validator: validate,
	}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return NewValidationError(err.(validator.ValidationErrors))
	}
	return nil
}

// ValidateVar validates a single variable
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validator.Var(field, tag)
}

// ValidationError represents a validation error with user-friendly messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// Error implements the error interface
func (e ValidationError) Error() string {
	var messages []string
	for field, message := range e.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", field, message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, ", "))
}

// NewValidationError creates a ValidationError from validator.ValidationErrors
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	errors := make(map[string]string)

	for _, err := range errs {
		field := err.Field()
		tag := err.Tag()

		switch tag {
		case TagRequired:
			errors[field] = fmt.Sprintf("%s is required", field)
		case TagMin:
			errors[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case TagMax:
			errors[field] = fmt.Sprintf("%s must be at most %s", field, err.Param())
		case TagRequestType:
			errors[field] = "request_type must be one of: medical, rescue, food, shelter, supplies, other"
		case TagRequestUrgency:
			errors[field] = "urgency must be one of: critical, high, medium, low"
		case TagRequestStatus:
			errors[field] = "status must be one of: active, withdrawn, resolved"
		default:
			errors[field] = fmt.Sprintf("%s is invalid", field)
		}
	}

	return &ValidationError{Errors: errors}
}

// registerCustomValidators registers custom validation rules
func registerCustomValidators(validate *validator.Validate) {
	// Request type validation against the known enum values
	validate.RegisterValidation("request_type", func(fl validator.FieldLevel) bool {
		return domain.IsValidRequestType(fl.Field().String())
	})

	// Urgency validation
	validate.RegisterValidation("request_urgency", func(fl validator.FieldLevel) bool {
		return domain.IsValidUrgency(fl.Field().String())
	})

	// Status validation
	validate.RegisterValidation("request_status", func(fl validator.FieldLevel) bool {
		return domain.IsValidStatus(fl.Field().String())
	})
}

// Validation tags shared between struct rules and ad-hoc checks
const (
	TagRequired       = "required"
	TagUUID           = "uuid4"
	TagRequestType    = "request_type"
	TagRequestUrgency = "request_urgency"
	TagRequestStatus  = "request_status"
	TagMin            = "min"
	TagMax            = "max"
)

var uuidValidator = New()

// IsValidUUID checks if a string is a well-formed public request id
func IsValidUUID(id string) bool {
	return uuidValidator.ValidateVar(id, TagRequired+","+TagUUID) == nil
}
