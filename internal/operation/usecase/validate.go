package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"secure-intent-router/internal/operation"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(statusTag, func(fl validator.FieldLevel) bool {
		return operation.ValidStatus(fl.Field().String())
	})
	return v
}

// check validates input and converts the first failure into a ValidationError.
func (uc *implUseCase) check(name operation.Name, input any) error {
	err := uc.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &operation.ValidationError{Operation: name, Reason: ReasonInvalid}
	}
	fe := fieldErrs[0]
	return &operation.ValidationError{
		Operation: name,
		Field:     fe.Field(),
		Reason:    reasonFor(fe.Tag()),
	}
}

func reasonFor(tag string) string {
	switch tag {
	case "required":
		return ReasonRequired
	case statusTag:
		return ReasonStatus
	case "datetime":
		return ReasonDate
	case "uuid":
		return ReasonUUID
	case "email":
		return ReasonEmail
	case "max":
		return ReasonTooLong
	case "min":
		return ReasonTooShort
	default:
		return ReasonInvalid
	}
}

// checkStatus validates a bare status value.
func checkStatus(name operation.Name, status string) error {
	if !operation.ValidStatus(status) {
		return &operation.ValidationError{Operation: name, Field: "status", Reason: ReasonStatus}
	}
	return nil
}

func checkScope(tenantID string) error {
	if tenantID == "" {
		return operation.ErrMissingTenant
	}
	return nil
}
