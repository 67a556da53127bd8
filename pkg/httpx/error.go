package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/plotbay/plotbay-backend/pkg/env"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

// HandleError translates the closed errorx set into the outward failure
// envelope. Field-carrying errors (validation, conflict) are returned with
// their per-field message map; everything else is logged with full detail
// server-side and redacted to a generic message in prod.
func HandleError(w http.ResponseWriter, r *http.Request, span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	slog.ErrorContext(r.Context(), msg, "error", err.Error())

	var appErr *errorx.Error
	if errors.As(err, &appErr) {
		if len(appErr.Fields) > 0 {
			writeFieldFailure(w, r, appErr.HTTPStatusCode(), appErr.Message, appErr.Fields)
			return
		}

		writeFailure(w, r, appErr.HTTPStatusCode(), outwardMessage(appErr), errorDetail(err))
		return
	}

	writeFailure(w, r, http.StatusInternalServerError, "Internal server error", errorDetail(err))
}

// BadRequest reports a malformed request (unparsable multipart, oversized
// body) before the pipeline is ever reached.
func BadRequest(w http.ResponseWriter, r *http.Request, span trace.Span, err error, msg string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	slog.WarnContext(r.Context(), msg, "error", err.Error())

	writeFailure(w, r, http.StatusBadRequest, msg, errorDetail(err))
}

func outwardMessage(appErr *errorx.Error) string {
	switch appErr.Code {
	case errorx.CodeInternal, errorx.CodeUploadFailed:
		return "Internal server error"
	default:
		return appErr.Message
	}
}

// errorDetail returns the cause chain text outside prod, nothing in prod.
func errorDetail(err error) string {
	if env.IsProd() {
		return ""
	}
	return err.Error()
}

func writeFieldFailure(w http.ResponseWriter, r *http.Request, status int, message string, fields map[string][]string) {
	response := Envelope{
		"status":  StatusFailed,
		"message": message,
		"errors":  fields,
	}

	if err := WriteJSON(w, status, response, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, message, detail string) {
	response := Envelope{
		"status":  StatusFailed,
		"message": message,
	}
	if detail != "" {
		response["error"] = detail
	}

	if err := WriteJSON(w, status, response, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
