// Package rest exposes the sign-up engine over a JSON API. Callers are
// authenticated upstream; the acting clan user id arrives in X-User-ID.
package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clanops/internal/common/clock"
	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
)

const userHeader = "X-User-ID"

// Translator renders messages and picks the locale of a request.
type Translator interface {
	T(locale, key string, data map[string]any) string
	Match(preferred ...string) string
}

type Handler struct {
	events     input.EventUseCase
	signUps    input.SignUpUseCase
	attendance input.AttendanceUseCase
	translator Translator
	clock      clock.Clock
}

func NewHandler(events input.EventUseCase, signUps input.SignUpUseCase, attendance input.AttendanceUseCase, translator Translator, clk clock.Clock) *Handler {
	return &Handler{
		events:     events,
		signUps:    signUps,
		attendance: attendance,
		translator: translator,
		clock:      clk,
	}
}

// Routes builds the router with its middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	r.Get("/health", HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/{id}", h.GetEvent)
		r.Put("/{id}", h.EditEvent)
		r.Post("/{id}/publish", h.Publish)
		r.Post("/{id}/cancel", h.Cancel)
		r.Post("/{id}/sign-up", h.SignUp)
		r.Post("/{id}/attendance", h.GenerateAttendance)
	})
	return r
}

func (h *Handler) locale(r *http.Request) string {
	return h.translator.Match(r.Header.Get("Accept-Language"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 4<<20) // mission files included
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeError maps domain errors to a status and a translated message.
// Validation errors keep their detail since it names the offending field.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := http.StatusInternalServerError, ""
	switch {
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSide):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidEvent), errors.Is(err, domain.ErrInvalidKind), errors.Is(err, domain.ErrInvalidMissionFile):
		status, detail = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrEventNotScheduled):
		status = http.StatusConflict
	default:
		logRequestError(r, err)
	}
	writeJSON(w, status, errorResponse{Error: h.translator.T(h.locale(r), domain.MessageID(err), nil), Detail: detail})
}

// writeResult reports a refused action as 409 with its message.
func writeResult(w http.ResponseWriter, res input.Result) {
	status := http.StatusOK
	if !res.Success {
		status = http.StatusConflict
	}
	writeJSON(w, status, resultResponse{Success: res.Success, Message: res.Message})
}

func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateEvent handles POST /events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.Header.Get(userHeader))
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + userHeader})
		return
	}
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Detail: err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), userID, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, newEventResponse(event, h.clock.Now(), userID))
}

// GetEvent handles GET /events/{id}. With X-User-ID the response also
// tells whether that user is signed up.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(event, h.clock.Now(), strings.TrimSpace(r.Header.Get(userHeader))))
}

// EditEvent handles PUT /events/{id}.
func (h *Handler) EditEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Detail: err.Error()})
		return
	}
	in, err := req.toInput()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.EditEvent(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEventResponse(event, h.clock.Now(), strings.TrimSpace(r.Header.Get(userHeader))))
}

// Publish handles POST /events/{id}/publish.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	res, err := h.events.Publish(r.Context(), h.locale(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

// Cancel handles POST /events/{id}/cancel.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	res, err := h.events.Cancel(r.Context(), h.locale(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

// SignUp handles POST /events/{id}/sign-up for the user in X-User-ID.
// Commitment "cancel" withdraws the sign-up.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.Header.Get(userHeader))
	if userID == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing " + userHeader})
		return
	}
	var req signUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Detail: err.Error()})
		return
	}

	var (
		res    input.Result
		err    error
		id     = chi.URLParam(r, "id")
		locale = h.locale(r)
	)
	switch req.Commitment {
	case commitmentCancel:
		res, err = h.signUps.Cancel(r.Context(), locale, id, userID)
	case commitmentCertain, commitmentMaybe, "":
		var side entities.Side
		side, err = entities.ParseSide(req.Side)
		if err == nil {
			res, err = h.signUps.SignUp(r.Context(), locale, id, userID, side, req.Commitment == commitmentMaybe)
		}
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown commitment", Detail: req.Commitment})
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

// GenerateAttendance handles POST /events/{id}/attendance.
func (h *Handler) GenerateAttendance(w http.ResponseWriter, r *http.Request) {
	event, err := h.attendance.Generate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newAttendanceResponse(event))
}

func logRequestError(r *http.Request, err error) {
	log.Printf("❌ %s %s [%s]: %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), err)
}
