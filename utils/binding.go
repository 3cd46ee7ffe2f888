// File: /utils/binding.go
package utils

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 422 error kinds
const (
	FieldErrMissing     = "missing"
	FieldErrValue       = "value_error"
	FieldErrType        = "type_error"
	FieldErrJSONInvalid = "json_invalid"
	FieldErrIntParsing  = "int_parsing"
)

// FieldError describes the first failing field of a request.
type FieldError struct {
	Type    string
	Loc     []string
	Details string
}

func (e *FieldError) Error() string {
	return strings.Join(e.Loc, ".") + ": " + e.Details
}

func BodyFieldError(field, details string) *FieldError {
	return &FieldError{Type: FieldErrValue, Loc: []string{"body", field}, Details: details}
}

func PathFieldError(field, details string) *FieldError {
	return &FieldError{Type: FieldErrIntParsing, Loc: []string{"path", field}, Details: details}
}

func QueryFieldError(errType, field, details string) *FieldError {
	return &FieldError{Type: errType, Loc: []string{"query", field}, Details: details}
}

// RegisterJSONTagNames makes gin's validator report fields by their json
// name so binding failures can be located in the request body.
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// BindError converts an error returned by ShouldBindJSON into a FieldError.
func BindError(err error) *FieldError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		if fe.Tag() == "required" {
			return &FieldError{Type: FieldErrMissing, Loc: []string{"body", fe.Field()}, Details: "Field required"}
		}
		return BodyFieldError(fe.Field(), "Failed on the '"+fe.Tag()+"' rule")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &FieldError{
			Type:    FieldErrType,
			Loc:     []string{"body", typeErr.Field},
			Details: "Input should be a valid " + typeErr.Type.String(),
		}
	}

	if errors.Is(err, io.EOF) {
		return &FieldError{Type: FieldErrMissing, Loc: []string{"body"}, Details: "Request body is required"}
	}

	return &FieldError{Type: FieldErrJSONInvalid, Loc: []string{"body"}, Details: err.Error()}
}
