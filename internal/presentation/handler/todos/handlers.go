package todos

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
	todos     domain.TodoRepository
	publisher *events.ActivityPublisher
}

func NewHandler(todos domain.TodoRepository, publisher *events.ActivityPublisher) *Handler {
	return &Handler{
		todos:     todos,
		publisher: publisher,
	}
}

// ListTodosHandler godoc
// @Summary      List the room's todos, newest first
// @Tags         todos
// @Produce      json
// @Param        code path string true "Room code"
// @Success      200 {array} map[string]interface{} "Todo records"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/todos [get]
func (h *Handler) ListTodosHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	docs, err := h.todos.ListByRoom(r.Context(), code)
	if err != nil {
		log.Printf("Failed to list todos for room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, serialize.Documents(docs))
}

// AddTodoHandler godoc
// @Summary      Add a todo to the room
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        request body createTodoRequest true "Todo payload"
// @Success      200 {object} map[string]interface{} "Todo record, done is false"
// @Failure      400 {object} map[string]interface{} "Bad request - text out of bounds"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/todos [post]
func (h *Handler) AddTodoHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		json.WriteValidationError(w, errors.New("room code is missing"))
		return
	}

	var req createTodoRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	textValidator := validate.Field("text",
		validate.Required(),
		validate.LengthBetween(domain.MinTodoTextLength, domain.MaxTodoTextLength),
	)
	if err := textValidator(req.Text); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	doc, err := h.todos.Create(ctx, domain.NewTodo(code, req.Text))
	if err != nil {
		log.Printf("Failed to create todo in room %s: %v", code, err)
		json.WriteInternalError(w, err)
		return
	}

	record := serialize.Document(doc)

	if err := h.publisher.PublishTodoCreated(ctx, code, record); err != nil {
		log.Printf("Error publishing todo created: %v", err)
	}

	json.Write(w, http.StatusOK, record)
}

// UpdateTodoHandler godoc
// @Summary      Update a todo's done flag
// @Description  Omitting done is a no-op that still returns the current record
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        code path string true "Room code"
// @Param        todoId path string true "Todo id"
// @Param        request body updateTodoRequest true "Fields to update"
// @Success      200 {object} map[string]interface{} "Updated todo record"
// @Failure      404 {object} map[string]interface{} "No todo matches both id and room"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/todos/{todoId} [patch]
func (h *Handler) UpdateTodoHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	todoID := chi.URLParam(r, "todoId")
	if code == "" || todoID == "" {
		json.WriteValidationError(w, errors.New("room code or todo id is missing"))
		return
	}

	var req updateTodoRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err)
		return
	}

	ctx := r.Context()

	var (
		doc domain.Document
		err error
	)
	if req.Done != nil {
		doc, err = h.todos.SetDone(ctx, code, todoID, *req.Done)
	} else {
		doc, err = h.todos.GetByID(ctx, code, todoID)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			json.WriteError(w, http.StatusNotFound, err, "Todo not found")
		default:
			log.Printf("Failed to update todo %s in room %s: %v", todoID, code, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	record := serialize.Document(doc)

	if req.Done != nil && *req.Done {
		if err := h.publisher.PublishTodoCompleted(ctx, code, record); err != nil {
			log.Printf("Error publishing todo completed: %v", err)
		}
	}

	json.Write(w, http.StatusOK, record)
}

// DeleteTodoHandler godoc
// @Summary      Delete a todo
// @Tags         todos
// @Produce      json
// @Param        code path string true "Room code"
// @Param        todoId path string true "Todo id"
// @Success      200 {object} deleteTodoResponse "Deleted"
// @Failure      404 {object} map[string]interface{} "No todo matches both id and room"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /rooms/{code}/todos/{todoId} [delete]
func (h *Handler) DeleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	todoID := chi.URLParam(r, "todoId")
	if code == "" || todoID == "" {
		json.WriteValidationError(w, errors.New("room code or todo id is missing"))
		return
	}

	ctx := r.Context()

	if err := h.todos.Delete(ctx, code, todoID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTodoNotFound):
			json.WriteError(w, http.StatusNotFound, err, "Todo not found")
		default:
			log.Printf("Failed to delete todo %s in room %s: %v", todoID, code, err)
			json.WriteInternalError(w, err)
		}
		return
	}

	if err := h.publisher.PublishTodoDeleted(ctx, code, todoID); err != nil {
		log.Printf("Error publishing todo deleted: %v", err)
	}

	json.Write(w, http.StatusOK, deleteTodoResponse{OK: true})
}
