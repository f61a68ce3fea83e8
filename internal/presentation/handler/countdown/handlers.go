package countdown

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/companion/internal/domain"
	"github.com/hilthontt/companion/internal/infrastructure/events"
	"github.com/hilthontt/companion/internal/infrastructure/json"
	"github.com/hilthontt/companion/internal/infrastructure/validate"
	"github.com/hilthontt/companion/internal/persistence/serialize"
)

type Handler struct {
	countdowns domain.CountdownRepository
	publisher  *events.ActivityPublisher
}

func NewHandler(countdowns domain.CountdownRepository, publisher *events.ActivityPublisher) *Handler {
	return &Handler{
		countdowns: countdowns,
		publisher:  publisher,
	}
}

// SetCountdownHandler godoc
// @Summary      Set the room's countdown target
// @Description  Upserts the single countdown document keyed by room code
// @Tags         countdown
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body setCountdownRequest true "Target timestamp"
// @Success      200 {object} map[string]interface{} "Countdown record"
// @Failure      400 {object} map[string]interface{} "Bad request - missing target_iso"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/countdown [put]
func (h *Handler) SetCountdownHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	var req setCountdownRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validate.Field("target_iso", validate.Required())(req.TargetISO); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	doc, err := h.countdowns.Set(ctx, code, req.TargetISO)
	if err != nil {
		log.Printf("Failed to set countdown for room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	record := serialize.Document(doc)

	if err := h.publisher.PublishCountdownUpdated(ctx, code, record); err != nil {
		log.Printf("Error publishing countdown updated: %v", err)
	}

	json.Write(w, http.StatusOK, record)
}

// GetCountdownHandler godoc
// @Summary      Get the room's countdown
// @Description  A room without a countdown yields an empty-but-present record, never a 404
// @Tags         countdown
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} map[string]interface{} "Countdown record, or {room_code, target_iso:null}"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/countdown [get]
func (h *Handler) GetCountdownHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	doc, err := h.countdowns.GetByRoom(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCountdownNotFound):
			json.Write(w, http.StatusOK, emptyCountdownResponse{RoomCode: code})
		default:
			log.Printf("Failed to get countdown for room %s: %v", code, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, serialize.Document(doc))
}
