package common

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/projectsdatadna/test-series-api-sub001/pkg/errors"
)

// APIResponse is the fixed envelope every endpoint returns.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Error     string      `json:"error,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	NextToken string      `json:"nextToken,omitempty"`
}

// RespondJSON sends a success envelope
func RespondJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Message: message,
		Data:    data,
	})
}

// RespondList sends a success envelope for list endpoints, with count and the
// next-page token when one exists
func RespondList(w http.ResponseWriter, message string, items interface{}, count int, nextToken string) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success:   true,
		Message:   message,
		Data:      items,
		Count:     &count,
		NextToken: nextToken,
	})
}

// RespondError sends an error envelope with an explicit status and code
func RespondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: message,
		Error:   code,
	})
}

// RespondAppError maps any error onto the envelope. AppErrors carry their own
// HTTP status; AWS SDK errors are translated by their vendor code; everything
// else is a 500.
func RespondAppError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromAWS(err)
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	code := appErr.Code
	if code == "" {
		code = string(appErr.Type)
	}
	RespondError(w, status, code, appErr.Message)
}

func writeJSON(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// ParseJSONBody parses a JSON request body with a size limit
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
