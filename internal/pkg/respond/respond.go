// Package respond writes JSON answers and translates application errors into
// the standard error body.
package respond

import (
	"encoding/json"
	"net/http"

	"gorecipes/internal/domain"
	apperror "gorecipes/internal/errors"
	"gorecipes/internal/pkg/logger"
)

// JSON writes data with the given status. A nil data writes only the header.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Error maps err to its HTTP status and writes a domain.ErrorResponse.
// Server errors are logged with their cause; client errors only at debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if log != nil {
		if status >= http.StatusInternalServerError {
			log.Error("request failed: "+r.Method+" "+r.URL.Path, err)
		} else {
			log.Debug("request rejected", map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   status,
				"category": category,
			})
		}
	}

	JSON(w, status, domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// Result writes data with successStatus when err is nil, the error body otherwise.
func Result(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	JSON(w, successStatus, data)
}

// Decode reads a JSON body into dst. A malformed body is a ValidationError.
func Decode(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Request body is required")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Invalid JSON payload")
	}
	return nil
}
