package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func UnauthorizedResponse(c *gin.Context, code, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{Code: code, Message: message})
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error. Unexpected errors are logged with the
// request logger and answered with a generic 500.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("internal_error", err).(*Error)
	}

	status := StatusOf(appErr.Kind)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("error_code", appErr.Code).
			Str("path", c.FullPath()).
			Msg("request failed")
		_ = c.Error(err)
	}

	if appErr.Kind == KindUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Fields,
	})
}

// FromBinding converts a gin binding failure into a validation error with
// one entry per offending field.
func FromBinding(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: tagMessage(fe)})
		}
		return Validation(fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Validation(FieldError{Field: typeErr.Field, Message: "tipo de valor inválido"})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Validation(FieldError{Field: "body", Message: "JSON inválido"})
	}

	return Validation(FieldError{Field: "body", Message: err.Error()})
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "min":
		return fmt.Sprintf("deve ter pelo menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("não pode exceder %s", fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	default:
		return fmt.Sprintf("falhou a regra %q", fe.Tag())
	}
}

// UseJSONFieldNames makes binding errors report json/form names instead of
// Go struct field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}
