package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/text/language"

	"absensi/internal/domain"
)

// dataEnvelope mirrors the response shape the dashboard and scanner clients
// already consume: the payload under "data", optional human-readable
// "message" and "error" strings alongside it.
type dataEnvelope struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("rest: encode response: %v", err)
	}
}

// resolveLocale picks the message locale from the Accept-Language header.
// Unparseable or missing headers fall through to the translator's default.
func resolveLocale(r *http.Request) string {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0].String()
}

// writeError maps domain errors onto statuses and localized messages:
// validation 400, unknown token 404, NIK conflict 409, repeat check-in 409
// with the stored record, everything else 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	locale := resolveLocale(r)

	var vErr *domain.ValidationError
	var repeat *domain.AlreadyCheckedInError
	switch {
	case errors.As(err, &vErr):
		h.writeMessage(w, r, http.StatusBadRequest, validationKey(vErr))
	case errors.Is(err, domain.ErrNIKTaken):
		h.writeMessage(w, r, http.StatusConflict, "error.nik_taken")
	case errors.Is(err, domain.ErrParticipantNotFound):
		h.writeMessage(w, r, http.StatusNotFound, "error.not_found")
	case errors.As(err, &repeat):
		// Not a hard failure for the scanner: report the existing record so
		// the operator can see who was scanned and keep going.
		msg := h.translator.T(locale, "error.already_checked_in", map[string]any{"Name": repeat.Participant.Name})
		writeJSON(w, http.StatusConflict, dataEnvelope{
			Data:  toParticipantResponse(repeat.Participant),
			Error: msg,
		})
	default:
		log.Printf("rest: %s %s: %v", r.Method, r.URL.Path, err)
		h.writeMessage(w, r, http.StatusInternalServerError, "error.internal")
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeJSON(w, status, dataEnvelope{Error: h.translator.T(resolveLocale(r), key, nil)})
}

func validationKey(err *domain.ValidationError) string {
	switch err.Field {
	case "name":
		return "error.name_too_short"
	case "nik":
		return "error.nik_too_short"
	case "token":
		return "error.token_required"
	}
	return "error.internal"
}
