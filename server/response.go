package server

import (
	"encoding/json"
	"net/http"

	"github.com/npillmayer/braille/internal/errs"
)

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code"`
	StatusCode int    `json:"status_code"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return errs.Wrap(err, "failed to encode JSON")
	}
	return nil
}

// writeError writes a JSON error response; code and status derive from the
// sentinel the error wraps.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, status := errs.Code(err)
	if status >= http.StatusInternalServerError {
		s.log.Errorw("request failed", "error", err, "path", r.URL.Path,
			"request_id", RequestID(r.Context()))
	}
	writeStatus(w, status, code, errs.Message(err))
}

func writeStatus(w http.ResponseWriter, status int, code, message string) {
	_ = writeJSON(w, status, errorResponse{
		Error:      message,
		Code:       code,
		StatusCode: status,
	})
}

// readJSON decodes a JSON request body of bounded size.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Limits.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errs.As(err, &tooLarge) {
			return errs.TooLarge("request body exceeds %d bytes", tooLarge.Limit)
		}
		return errs.InvalidRequest("invalid request body: %v", err)
	}
	return nil
}

// writeAttachment sends generated content as a file download.
func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
