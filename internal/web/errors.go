package web

// errors.go provides unified error response handling for the web layer.
//
// Handlers call respondError with the technical error; the error is mapped
// via sius.MapError to a user-friendly message with a support code, the
// technical details are logged with the request ID for correlation, and the
// client receives the sanitized JSON body.

import (
	"encoding/json"
	"net/http"

	"siusscore/internal/logging"
	"siusscore/internal/sius"
)

// ErrorResponse is the JSON structure for API error responses.
// Includes both machine-readable (Code) and human-readable (Error, Action) fields.
type ErrorResponse struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
	Code   string `json:"code"`
}

// respondError logs the technical error server-side and writes the mapped
// user-friendly JSON response.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	respondErrorFromErr(w, r, err, statusCode)
}

func respondErrorFromErr(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	userMsg := sius.MapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:  userMsg.Message,
		Action: userMsg.Action,
		Code:   userMsg.Code,
	})
}
