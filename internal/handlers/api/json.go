package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/KitchAIv1/statjam-sub000/internal/services/messaging"
	"github.com/rs/zerolog"
)

// CodeMalformedBody is returned when a request body cannot be decoded
const CodeMalformedBody = "malformed_body"

// errorResponse is the body of every failed request
type errorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// statusByCode maps messaging codes to HTTP statuses. Unlisted codes are
// rejected operator input and map to 422.
var statusByCode = map[string]int{
	"game_not_found":       http.StatusNotFound,
	"game_not_active":      http.StatusConflict,
	"invalid_transition":   http.StatusConflict,
	"game_already_exists":  http.StatusConflict,
	"duplicate_submission": http.StatusConflict,
	"nothing_to_undo":      http.StatusConflict,
	"invalid_input":        http.StatusBadRequest,
	"persistence_failure":  http.StatusServiceUnavailable,
	"service_closed":       http.StatusServiceUnavailable,
	messaging.CodeInternal: http.StatusInternalServerError,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// readJSON decodes the request body into v. An empty body leaves v zero.
func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (h *Handler) writeMalformed(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   err.Error(),
		Code:    CodeMalformedBody,
		Message: "The request body could not be read.",
	})
}

// writeError translates a tracker error into its status and operator message
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	msg, msgErr := h.messaging.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		msg = &messaging.GetErrorMessageOutput{Code: messaging.CodeInternal, Severity: messaging.SeverityError}
	}

	status, ok := statusByCode[msg.Code]
	if !ok {
		status = http.StatusUnprocessableEntity
	}

	logger := zerolog.Ctx(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("code", msg.Code).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("code", msg.Code).Msg("request rejected")
	}

	writeJSON(w, status, errorResponse{
		Error:    err.Error(),
		Code:     msg.Code,
		Title:    msg.Title,
		Message:  msg.Message,
		Severity: string(msg.Severity),
	})
}
