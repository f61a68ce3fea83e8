package countdown

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/companion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCountdownRepository struct {
	docs map[string]domain.Document
}

func newFakeCountdownRepository() *fakeCountdownRepository {
	return &fakeCountdownRepository{docs: make(map[string]domain.Document)}
}

func (f *fakeCountdownRepository) Set(_ context.Context, roomCode string, targetISO string) (domain.Document, error) {
	now := time.Now().UTC()

	doc, ok := f.docs[roomCode]
	if !ok {
		doc = domain.Document{"_id": primitive.NewObjectID()}
		f.docs[roomCode] = doc
	}

	doc["room_code"] = roomCode
	doc["target_iso"] = targetISO
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}

func (f *fakeCountdownRepository) GetByRoom(_ context.Context, roomCode string) (domain.Document, error) {
	doc, ok := f.docs[roomCode]
	if !ok {
		return nil, domain.ErrCountdownNotFound
	}
	return doc, nil
}

func newTestRouter(repo domain.CountdownRepository) http.Handler {
	h := NewHandler(repo, nil)

	r := chi.NewRouter()
	r.Put("/rooms/{code}/countdown", h.SetCountdownHandler)
	r.Get("/rooms/{code}/countdown", h.GetCountdownHandler)
	return r
}

func TestSetThenGetCountdown(t *testing.T) {
	router := newTestRouter(newFakeCountdownRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/rooms/abc/countdown",
		bytes.NewBufferString(`{"target_iso": "2030-01-01T00:00:00Z"}`))
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/rooms/abc/countdown", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "2030-01-01T00:00:00Z", record["target_iso"])
	assert.Equal(t, "abc", record["room_code"])
	assert.NotEmpty(t, record["id"])
}

func TestSetCountdown_ReplacesTarget(t *testing.T) {
	router := newTestRouter(newFakeCountdownRepository())

	for _, target := range []string{"2030-01-01T00:00:00Z", "2031-06-15T08:00:00Z"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/rooms/abc/countdown",
			bytes.NewBufferString(`{"target_iso": "`+target+`"}`))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/abc/countdown", nil)
	router.ServeHTTP(w, req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "2031-06-15T08:00:00Z", record["target_iso"], "upsert must overwrite in place")
}

func TestGetCountdown_AbsentIsEmptyNot404(t *testing.T) {
	router := newTestRouter(newFakeCountdownRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/xyz/countdown", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "a missing countdown must not 404")

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "xyz", record["room_code"])

	target, present := record["target_iso"]
	assert.True(t, present, "target_iso must be present")
	assert.Nil(t, target, "target_iso must be null")
}

func TestSetCountdown_RequiresTarget(t *testing.T) {
	router := newTestRouter(newFakeCountdownRepository())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/rooms/abc/countdown", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
