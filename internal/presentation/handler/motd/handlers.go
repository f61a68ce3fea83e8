package motd

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
	motds     domain.MotdRepository
	publisher *events.ActivityPublisher
}

func NewHandler(motds domain.MotdRepository, publisher *events.ActivityPublisher) *Handler {
	return &Handler{
		motds:     motds,
		publisher: publisher,
	}
}

// CreateMotdHandler godoc
// @Summary      Leave a message of the day in the room
// @Tags         motd
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body createMotdRequest true "Message payload"
// @Success      200 {object} map[string]interface{} "Motd record"
// @Failure      400 {object} map[string]interface{} "Bad request - text out of bounds"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/motd [post]
func (h *Handler) CreateMotdHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	var req createMotdRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	textValidator := validate.Field("text",
		validate.Required(),
		validate.LengthBetween(domain.MinMotdTextLength, domain.MaxMotdTextLength),
	)
	if err := textValidator(req.Text); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	doc, err := h.motds.Create(ctx, domain.NewMotd(code, req.Text, req.Author))
	if err != nil {
		log.Printf("Failed to create motd in room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	record := serialize.Document(doc)

	if err := h.publisher.PublishMotdCreated(ctx, code, record); err != nil {
		log.Printf("Error publishing motd created: %v", err)
	}

	json.Write(w, http.StatusOK, record)
}

// ListMotdHandler godoc
// @Summary      List the room's messages, newest first
// @Tags         motd
// @Produce      json
// @Param        code path string true "Room code"
// @Param        limit query int false "Maximum entries to return" default(20)
// @Success      200 {array} map[string]interface{} "Motd records"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/motd [get]
func (h *Handler) ListMotdHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	docs, err := h.motds.ListByRoom(r.Context(), code, parseLimit(r, defaultListLimit))
	if err != nil {
		log.Printf("Failed to list motd for room %s: %v", code, err)
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
