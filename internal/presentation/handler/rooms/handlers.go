package rooms

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
	rooms     domain.RoomRepository
	publisher *events.ActivityPublisher
}

func NewHandler(rooms domain.RoomRepository, publisher *events.ActivityPublisher) *Handler {
	return &Handler{
		rooms:     rooms,
		publisher: publisher,
	}
}

// CreateRoomHandler godoc
// @Summary      Create a room, or fetch it if the code is taken
// @Description  Idempotent: re-posting an existing code returns the stored room unchanged
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body createRoomRequest true "Room creation parameters"
// @Success      200 {object} map[string]interface{} "Room record"
// @Failure      400 {object} map[string]interface{} "Bad request - missing code"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms [post]
func (h *Handler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	if err := validate.Field("code", validate.Required())(req.Code); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	existing, err := h.rooms.GetByCode(ctx, req.Code)
	if err == nil {
		json.Write(w, http.StatusOK, serialize.Document(existing))
		return
	}
	if !errors.Is(err, domain.ErrRoomNotFound) {
		log.Printf("Failed to look up room %s: %v", req.Code, err)
		json.WriteInternalError(w, err)
		return
	}

	created, err := h.rooms.Create(ctx, domain.NewRoom(req.Code, req.Title))
	if err != nil {
		log.Printf("Repository error creating room %s: %v", req.Code, err)
		json.WriteInternalError(w, err)
		return
	}

	record := serialize.Document(created)

	if err := h.publisher.PublishRoomCreated(ctx, req.Code, record); err != nil {
		log.Printf("Error publishing room created: %v", err)
	}

	json.Write(w, http.StatusOK, record)
}

// GetRoomHandler godoc
// @Summary      Get a room by code
// @Tags         rooms
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {object} map[string]interface{} "Room record"
// @Failure      404 {object} map[string]interface{} "Room not found"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code} [get]
func (h *Handler) GetRoomHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	doc, err := h.rooms.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			json.WriteError(w, http.StatusNotFound, err, "Room not found")
		default:
			log.Printf("Failed to find room %s: %v", code, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	json.Write(w, http.StatusOK, serialize.Document(doc))
}
