package service

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopdesk/shopdesk/util/common"

	"github.com/go-playground/validator/v10"
)

// Translation keys of validation messages.
const (
	msgRequired    = "validation.required"
	msgNumber      = "validation.number"
	msgInteger     = "validation.integer"
	msgNonNegative = "validation.nonNegative"
	msgPositive    = "validation.positive"
	msgMax         = "validation.max"
	msgInvalid     = "validation.invalid"
)

var validate = newValidator()

// newValidator reports fields by their form name so messages match the input
// the user filled in.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return common.NewErrorf("validate %T: %v", s, err)
	}
	fe := fieldErrs[0]
	verr := &ValidationError{Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		verr.Key = msgRequired
	case "gte":
		verr.Key = msgNonNegative
	case "gt":
		verr.Key = msgPositive
	case "lte":
		verr.Key = msgMax
		verr.Param = fe.Param()
	default:
		verr.Key = msgInvalid
		verr.Param = fe.Tag()
	}
	return verr
}

// parseFloat accepts a dot or a comma as decimal separator.
func parseFloat(field, value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Field: field, Key: msgRequired}
	}
	f, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: field, Key: msgNumber}
	}
	return f, nil
}

func parseInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Field: field, Key: msgRequired}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Field: field, Key: msgInteger}
	}
	return n, nil
}
