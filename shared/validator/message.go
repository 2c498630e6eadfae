package validator

import (
	"errors"
	"livecity/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"max":       "{field} must be less than or equal to {param}",
		"min":       "{field} must be greater than or equal to {param}",
		"email":     "{field} must be a valid email address",
		"dateonly":  "{field} must be a date formatted as YYYY-MM-DD",
		"timeofday": "{field} must be a time formatted as HH:MM",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())

	return strings.ReplaceAll(errStr, "{param}", valErr.Param())
}

func details(err error) []failure.Detail {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.Detail{{Message: err.Error()}}
	}

	res := make([]failure.Detail, 0, len(valErrors))
	for _, valErr := range valErrors {
		res = append(res, failure.Detail{
			Field:   valErr.Field(),
			Rule:    valErr.Tag(),
			Message: render(valErr),
		})
	}

	return res
}
