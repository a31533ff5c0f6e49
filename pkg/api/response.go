package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rulechain/pkg/chain"
	"github.com/dmitrymomot/rulechain/pkg/logger"
	"github.com/dmitrymomot/rulechain/pkg/schema"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

// Response is the envelope of every API response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps schema fields to
// configuration problems for invalid_schema errors.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Data: data})
}

// writeError maps err to a status and error code. Unknown errors are logged
// and reported without their message.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeJSON(w, status, Response{Error: detail})
}

func errorDetail(err error) (int, *ErrorDetail) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, validator.ErrInvalidSchema):
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "invalid_schema",
			Message: "schema contains invalid rule chains",
			Details: configDetails(err),
		}
	case errors.Is(err, schema.ErrSchemaNotFound):
		return http.StatusNotFound, &ErrorDetail{Code: "schema_not_found", Message: err.Error()}
	case errors.Is(err, schema.ErrInvalidName):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_schema_name", Message: err.Error()}
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: "request_too_large", Message: err.Error()}
	case errors.Is(err, schema.ErrDecode), errors.Is(err, schema.ErrDecodeRequest):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{
			Code:    "internal_error",
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}
}

// configDetails collects the chain.ConfigError values joined into err.
func configDetails(err error) map[string][]string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}

	details := make(map[string][]string)
	for _, e := range joined.Unwrap() {
		var cerr *chain.ConfigError
		if errors.As(e, &cerr) {
			details[cerr.Field] = append(details[cerr.Field], cerr.Error())
		}
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
