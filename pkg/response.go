package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
	CSV  string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
	CSV:  "text/csv; charset=utf-8",
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// WriteJSON marshals v and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respJson, statusCode)
}

// Notice is the body of non-fatal failures and informational replies.
type Notice struct {
	Message string `json:"message,omitempty"`
	Notice  string `json:"notice,omitempty"`
}

// WriteNotice replies with a user facing notice, e.g. when a store is unavailable.
func WriteNotice(w http.ResponseWriter, notice string, statusCode int) {
	WriteJSON(w, Notice{Notice: notice}, statusCode)
}

// WriteMessageOK replies 200 with an informational message.
func WriteMessageOK(w http.ResponseWriter, message string) {
	WriteJSON(w, Notice{Message: message}, http.StatusOK)
}
