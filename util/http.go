package util

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes v with the given status code. Encoding failures are
// logged; the status line has already been sent by then.
func WriteJSON(w http.ResponseWriter, log *zap.SugaredLogger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorw("Error encoding response", "status", status, "error", err)
	}
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, log *zap.SugaredLogger, status int, msg string) {
	WriteJSON(w, log, status, ErrorResponse{Error: msg})
}
