package httpx

import (
	"encoding/json"
	"log/slog"
	"maps"
	"net/http"
)

type Envelope map[string]any

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

func WriteJSON(w http.ResponseWriter, status int, data Envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}
	return nil
}

// Success writes the outward success envelope: {status, message, data}.
// A nil data omits the field.
func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	envelope := Envelope{
		"status":  StatusSuccess,
		"message": message,
	}
	if data != nil {
		envelope["data"] = data
	}

	if err := WriteJSON(w, status, envelope, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write success response", "status", status, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
