// Package validator adapts go-playground/validator to echo's Validator
// interface and translates failed rules into the API's error taxonomy.
package validator

import (
	"reflect"
	"strings"

	domainerrors "travelapp/internal/domain/errors"
	"travelapp/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// ruleMessages is the declarative rule → message table. Keys are
// "<json field>:<rule>"; every failed rule contributes one message to the
// aggregated 400 response, in declaration order.
var ruleMessages = map[string]string{
	"name:required":       "You must provide your name",
	"email:required":      "You must provide a valid email",
	"email:email":         "You must provide a valid email",
	"password:min":        "Password must be at least 6 characters",
	"passwordConfirm:min": "Passwords must match",
	"name:min":            "Name is required",
	"price:required":      "Price is required",
	"location:required":   "Location is required",
	"type:required":       "Location must be a GeoJSON Point",
	"type:eq":             "Location must be a GeoJSON Point",
}

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *playground.Validate
}

// New builds the request validator. Field names in error reports come from
// json tags so they line up with the wire format.
func New() *RequestValidator {
	validate := playground.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate runs the struct rules and aggregates every failure into a single
// validation error.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "request validation failed")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, messageFor(fieldError))
	}

	return domainerrors.NewValidation(messages...)
}

func messageFor(fieldError playground.FieldError) string {
	if msg, ok := ruleMessages[fieldError.Field()+":"+fieldError.Tag()]; ok {
		return msg
	}

	return "Invalid " + fieldError.Field()
}
