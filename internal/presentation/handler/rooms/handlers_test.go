package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/companion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRoomRepository struct {
	docs map[string]domain.Document
}

func newFakeRoomRepository() *fakeRoomRepository {
	return &fakeRoomRepository{docs: make(map[string]domain.Document)}
}

func (f *fakeRoomRepository) GetByCode(_ context.Context, code string) (domain.Document, error) {
	doc, ok := f.docs[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return doc, nil
}

func (f *fakeRoomRepository) Create(_ context.Context, room *domain.Room) (domain.Document, error) {
	doc := domain.Document{
		"_id":   primitive.NewObjectID(),
		"code":  room.Code,
		"title": room.Title,
	}
	f.docs[room.Code] = doc
	return doc, nil
}

func newTestRouter(repo domain.RoomRepository) http.Handler {
	h := NewHandler(repo, nil)

	r := chi.NewRouter()
	r.Post("/rooms", h.CreateRoomHandler)
	r.Get("/rooms/{code}", h.GetRoomHandler)
	return r
}

func postRoom(t *testing.T, router http.Handler, body string) map[string]any {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	return record
}

func TestCreateRoom_IsIdempotent(t *testing.T) {
	router := newTestRouter(newFakeRoomRepository())

	first := postRoom(t, router, `{"code": "r1", "title": "us"}`)
	second := postRoom(t, router, `{"code": "r1"}`)

	assert.NotEmpty(t, first["id"])
	assert.Equal(t, first["id"], second["id"], "re-posting the same code must return the same room")
	assert.NotContains(t, first, "_id")
}

func TestCreateRoom_RequiresCode(t *testing.T) {
	router := newTestRouter(newFakeRoomRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms", bytes.NewBufferString(`{"title": "no code"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoom_NotFound(t *testing.T) {
	router := newTestRouter(newFakeRoomRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRoom_ReturnsRecord(t *testing.T) {
	repo := newFakeRoomRepository()
	router := newTestRouter(repo)

	created := postRoom(t, router, `{"code": "r1"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/r1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, created["id"], record["id"])
	assert.Equal(t, "r1", record["code"])
}
