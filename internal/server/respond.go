package server

import (
	"encoding/json"
	"net/http"

	"github.com/staircast/staircast/pkg/errors"
)

// errorResponse is the JSON envelope for all error replies.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a pipeline or store error onto an HTTP status using
// its error code and emits the standard error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusForCode(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidSpec, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidName, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeDesignNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes a request body, rejecting unknown fields and
// oversized payloads.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid request body")
	}
	return nil
}
