package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"livecity/shared/constant"
	"livecity/shared/failure"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		str, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := time.Parse(layout, str)

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return constant.Empty
		}

		return name
	})

	err := validate.RegisterValidation("dateonly", registerLayoutValidation(constant.DateOnlyFormat))
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("timeofday", registerLayoutValidation(constant.TimeOfDayFormat))
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads JSON from r into data without running the validation tags.
func Decode[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Invalid(details(err)...) //nolint:wrapcheck
	}

	return nil
}
