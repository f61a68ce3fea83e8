package pings

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/infrastructure/events"
	"github.com/hilthontt/companion/internal/infrastructure/json"
	"github.com/hilthontt/companion/internal/infrastructure/validate"
	"github.com/hilthontt/companion/internal/persistence/serialize"
)

const defaultListLimit = 20

type Handler struct {
	pings     domain.PingRepository
	publisher *events.ActivityPublisher
}

func NewHandler(pings domain.PingRepository, publisher *events.ActivityPublisher) *Handler {
	return &Handler{
		pings:     pings,
		publisher: publisher,
	}
}

// CreatePingHandler godoc
// @Summary      Send a presence ping to the room
// @Tags         pings
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body createPingRequest true "Ping payload"
// @Success      200 {object} map[string]interface{} "Ping record"
// @Failure      400 {object} map[string]interface{} "Bad request - note too long"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/pings [post]
func (h *Handler) CreatePingHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	var req createPingRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if req.Note != nil {
		if err := validate.Field("note", validate.MaxLength(domain.MaxPingNoteLength))(*req.Note); err != nil {
			json.WriteValidationError(w, err)
			return
		}
	}

	ctx := r.Context()

	doc, err := h.pings.Create(ctx, domain.NewPing(code, req.Note, req.Author))
	if err != nil {
		log.Printf("Failed to create ping in room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	record := serialize.Document(doc)

	if err := h.publisher.PublishPingCreated(ctx, code, record); err != nil {
		log.Printf("Error publishing ping created: %v", err)
	}

	json.Write(w, http.StatusOK, record)
}

// ListPingsHandler godoc
// @Summary      List the room's pings, newest first
// @Tags         pings
// @Produce      json
// @Param        code path string true "Room code"
// @Param        limit query int false "Maximum entries to return" default(20)
// @Success      200 {array} map[string]interface{} "Ping records"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/pings [get]
func (h *Handler) ListPingsHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	docs, err := h.pings.ListByRoom(r.Context(), code, parseLimit(r, defaultListLimit))
	if err != nil {
		log.Printf("Failed to list pings for room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, serialize.Documents(docs))
}

func parseLimit(r *http.Request, fallback int64) int64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return fallback
	}

	return limit
}
