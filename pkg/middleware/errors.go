package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/dataset"
	"agroadvisor/pkg/logging"
	"agroadvisor/pkg/model"
	"agroadvisor/pkg/validation"
)

// Kinds of error reported to API clients.
const (
	KindUnknownCrop    = "unknown_crop"
	KindSchemaMismatch = "schema_mismatch"
	KindDataset        = "dataset"
	KindValidation     = "validation"
	KindHTTP           = "http"
	KindInternal       = "internal"
)

// GenericMessage is shown for failures that are not the caller's fault.
const GenericMessage = "An error occurred"

// Problem is the JSON body of every error response.
type Problem struct {
	Kind   string                  `json:"kind"`
	Error  string                  `json:"error"`
	Type   string                  `json:"type,omitempty"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// Classify maps an error to its status code and response body.
func Classify(err error) (int, Problem) {
	var (
		unknown *crop.UnknownCropError
		schema  *model.SchemaMismatchError
		data    *dataset.Error
		invalid *validation.Error
		he      *echo.HTTPError
	)
	switch {
	case errors.As(err, &unknown):
		return http.StatusBadRequest, Problem{Kind: KindUnknownCrop, Error: unknown.Error()}
	case errors.As(err, &schema):
		return http.StatusUnprocessableEntity, Problem{Kind: KindSchemaMismatch, Error: schema.Error()}
	case errors.As(err, &data):
		return http.StatusUnprocessableEntity, Problem{Kind: KindDataset, Error: data.Error()}
	case errors.As(err, &invalid):
		return http.StatusBadRequest, Problem{Kind: KindValidation, Error: invalid.Error(), Fields: invalid.Fields}
	case errors.As(err, &he):
		return he.Code, Problem{Kind: KindHTTP, Error: fmt.Sprint(he.Message)}
	default:
		return http.StatusInternalServerError, Problem{Kind: KindInternal, Error: GenericMessage, Type: fmt.Sprintf("%T", err)}
	}
}

// ErrorHandler is the echo HTTPErrorHandler for the JSON API.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, body := Classify(err)
	if status >= 500 {
		logging.With("http").Error().Err(err).
			Str("request_id", RequestID(c)).
			Str("type", body.Type).
			Msg("request failed")
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logging.With("http").Warn().Err(err).Msg("could not write error response")
	}
}
