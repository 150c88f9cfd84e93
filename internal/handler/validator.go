package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// requestValidator checks decoded request bodies. Field names in its errors are the JSON names.
var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	// money fields validate as numbers, so gt=0 works on decimal.Decimal
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("color", validateColor); err != nil {
		panic(err)
	}
	return v
})

func validateRequest(req any) error {
	return requestValidator().Struct(req)
}

// fixed messages per tag; tags with a parameter are formatted in fieldMessage
var tagMessages = map[string]string{
	"required": "This field is required",
	"color":    domain.ErrMsgInvalidColor,
	"url":      "Invalid URL",
}

// fieldErrors turns a validation error into a JSON field -> message map
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "startswith":
		return fmt.Sprintf("Must start with %s", fe.Param())
	}
	return "Invalid value"
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}

func validateColor(fl validator.FieldLevel) bool {
	return domain.Color(fl.Field().String()).Valid()
}
