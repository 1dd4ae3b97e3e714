// Package httputil centralizes JSON response writing and request decoding so
// handlers stay thin and the error contract is enforced in one place.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	dErrors "spc-gateway/pkg/domain-errors"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:     http.StatusBadRequest,
	dErrors.CodeValidation:     http.StatusUnprocessableEntity,
	dErrors.CodeUnauthorized:   http.StatusUnauthorized,
	dErrors.CodeNotFound:       http.StatusNotFound,
	dErrors.CodeInvalidPayload: http.StatusBadRequest,
	dErrors.CodeUnavailable:    http.StatusServiceUnavailable,
	dErrors.CodeInternal:       http.StatusInternalServerError,
}

// WriteJSON serializes v with the given status. Encoding failures are not
// recoverable at this point, so they are ignored after headers are sent.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a domain error to its HTTP status and wire shape. Internal
// errors omit the description so implementation details never leak to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		code = dErrors.CodeInternal
		status = http.StatusInternalServerError
	}

	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		body["error_description"] = err.Error()
	}
	WriteJSON(w, status, body)
}

// Validatable is implemented by request types that validate and parse their
// own fields.
type Validatable interface {
	Validate() error
}

// validatablePtr constrains PT to be a pointer to T implementing Validatable,
// so DecodeAndPrepare can be called with a single explicit type argument.
type validatablePtr[T any] interface {
	*T
	Validatable
}

// DecodeAndPrepare decodes a JSON request body into T and runs its Validate
// hook. On failure it writes the error response and returns ok=false; the
// handler should simply return.
func DecodeAndPrepare[T any, PT validatablePtr[T]](
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	requestID string,
) (PT, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if logger != nil {
			logger.WarnContext(r.Context(), "malformed request body",
				"error", err,
				"request_id", requestID,
			)
		}
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed JSON body"))
		return nil, false
	}

	ptr := PT(&req)
	if err := ptr.Validate(); err != nil {
		WriteError(w, err)
		return nil, false
	}
	return ptr, true
}
