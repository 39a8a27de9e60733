// Package forms extracts and validates posted form fields.
package forms

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/lazyhr/hrportal/internal/messages"
)

// ErrMissingFields is returned when a required field was left blank.
var ErrMissingFields = errors.New(messages.PleaseFillRequiredFields)

var validate = validator.New()

// Validate runs the struct-tag rules on an outbound payload. Failures are
// reported with the same message as a blank form field: from the viewer's
// side both mean the form was not filled in properly.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return ErrMissingFields
	}
	return nil
}

// Values collects the posted form fields into a map, trimming surrounding
// whitespace. Repeated fields keep their first value.
func Values(ctx *gin.Context) map[string]string {
	if err := ctx.Request.ParseForm(); err != nil {
		return map[string]string{}
	}
	return fromURLValues(ctx.Request.PostForm)
}

func fromURLValues(form url.Values) map[string]string {
	out := make(map[string]string, len(form))
	for key, vals := range form {
		if len(vals) == 0 {
			continue
		}
		out[key] = strings.TrimSpace(vals[0])
	}
	return out
}

// Required checks that every named field is present and non-blank.
func Required(values map[string]string, fields ...string) error {
	for _, f := range fields {
		if values[f] == "" {
			return ErrMissingFields
		}
	}
	return nil
}
