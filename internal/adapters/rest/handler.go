package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"absensi/internal/domain/entities"
	"absensi/internal/ports/input"
	"absensi/internal/ports/output"
	"absensi/pkg/qr"
	"absensi/pkg/tz"
)

const latestLimit = 10

// Handler is the thin HTTP layer over the registry and check-in use cases.
// It shapes requests and responses and translates domain errors to statuses;
// business rules stay behind the input ports.
type Handler struct {
	registry   input.RegistryUseCase
	checkin    input.CheckinUseCase
	translator output.T
}

func NewHandler(registry input.RegistryUseCase, checkin input.CheckinUseCase, translator output.T) *Handler {
	return &Handler{
		registry:   registry,
		checkin:    checkin,
		translator: translator,
	}
}

type registerRequest struct {
	Name string `json:"name"`
	NIK  string `json:"nik"`
}

type checkinRequest struct {
	Token string `json:"token"`
	// QRToken is accepted as an alias for older scanner clients.
	QRToken string `json:"qrToken"`
}

type participantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	NIK       string `json:"nik"`
	Hadir     bool   `json:"hadir"`
	QRToken   string `json:"qrToken"`
	QRURL     string `json:"qrUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type summaryResponse struct {
	Total int64   `json:"total"`
	Hadir int64   `json:"hadir"`
	Belum int64   `json:"belum"`
	Rate  float64 `json:"rate"`
}

func toParticipantResponse(p *entities.Participant) participantResponse {
	return participantResponse{
		ID:        p.ID,
		Name:      p.Name,
		NIK:       p.NIK,
		Hadir:     p.Attended,
		QRToken:   p.Token,
		QRURL:     qr.ImageURL(p.Token, 0),
		CreatedAt: p.CreatedAt.In(tz.Jakarta).Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.In(tz.Jakarta).Format(time.RFC3339),
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "error.bad_body")
		return
	}

	participant, err := h.registry.Register(r.Context(), req.Name, req.NIK)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dataEnvelope{Data: toParticipantResponse(participant)})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	participants, err := h.registry.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]participantResponse, len(participants))
	for i := range participants {
		out[i] = toParticipantResponse(&participants[i])
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: out})
}

func (h *Handler) handleLatest(w http.ResponseWriter, r *http.Request) {
	participants, err := h.registry.Latest(r.Context(), latestLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]participantResponse, len(participants))
	for i := range participants {
		out[i] = toParticipantResponse(&participants[i])
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: out})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "error.bad_body")
		return
	}
	token := req.Token
	if token == "" {
		token = req.QRToken
	}

	participant, err := h.checkin.CheckIn(r.Context(), token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message := h.translator.T(resolveLocale(r), "checkin.success", map[string]any{"Name": participant.Name})
	writeJSON(w, http.StatusOK, dataEnvelope{
		Data:    toParticipantResponse(participant),
		Message: message,
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.registry.Summary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dataEnvelope{Data: summaryResponse{
		Total: summary.Total,
		Hadir: summary.Attended,
		Belum: summary.Pending,
		Rate:  summary.Rate,
	}})
}
