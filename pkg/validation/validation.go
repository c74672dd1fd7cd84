// Package validation wraps a shared go-playground validator and reports
// failures as *Error so handlers can answer with per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the shared instance. Field names come from json tags.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
	return validate
}

type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Error is a failed validation of one or more fields.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// Struct validates v against its validate tags.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &Error{Fields: []FieldError{{Field: "request", Message: err.Error()}}}
	}
	out := &Error{Fields: make([]FieldError, len(ves))}
	for i, fe := range ves {
		out.Fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe.Field(), fe.Tag(), fe.Param()),
		}
	}
	return out
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// Between checks lo <= v <= hi, returning nil when it holds.
func Between(field string, v, lo, hi float64) *FieldError {
	if v >= lo && v <= hi {
		return nil
	}
	tag, bound := "gte", lo
	if v > hi {
		tag, bound = "lte", hi
	}
	p := strconv.FormatFloat(bound, 'f', -1, 64)
	return &FieldError{Field: field, Tag: tag, Param: p, Message: message(field, tag, p)}
}

// Collect returns an *Error for the non-nil field errors, or nil.
func Collect(fes ...*FieldError) error {
	var out []FieldError
	for _, fe := range fes {
		if fe != nil {
			out = append(out, *fe)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return &Error{Fields: out}
}
