package pings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hilthontt/companion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePingRepository struct {
	docs []domain.Document
}

func (f *fakePingRepository) Create(_ context.Context, ping *domain.Ping) (domain.Document, error) {
	doc := domain.Document{
		"_id":       primitive.NewObjectID(),
		"room_code": ping.RoomCode,
		"note":      ping.Note,
		"author":    ping.Author,
		"at":        ping.At,
	}
	f.docs = append(f.docs, doc)
	return doc, nil
}

func (f *fakePingRepository) ListByRoom(_ context.Context, roomCode string, limit int64) ([]domain.Document, error) {
	out := make([]domain.Document, 0)
	for i := len(f.docs) - 1; i >= 0; i-- {
		if f.docs[i]["room_code"] != roomCode {
			continue
		}
		out = append(out, f.docs[i])
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func newTestRouter(repo domain.PingRepository) http.Handler {
	h := NewHandler(repo, nil)

	r := chi.NewRouter()
	r.Post("/rooms/{code}/pings", h.CreatePingHandler)
	r.Get("/rooms/{code}/pings", h.ListPingsHandler)
	return r
}

func TestCreatePing_EmptyBodyIsEnough(t *testing.T) {
	router := newTestRouter(&fakePingRepository{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms/r1/pings", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "r1", record["room_code"])
	assert.Nil(t, record["note"])
	assert.NotEmpty(t, record["at"])
}

func TestCreatePing_NoteTooLong(t *testing.T) {
	router := newTestRouter(&fakePingRepository{})

	long := strings.Repeat("x", domain.MaxPingNoteLength+1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms/r1/pings",
		bytes.NewBufferString(`{"note": "`+long+`"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPings_ScopedToRoom(t *testing.T) {
	router := newTestRouter(&fakePingRepository{})

	for _, target := range []string{"/rooms/r1/pings", "/rooms/r2/pings", "/rooms/r1/pings"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(`{"note": "hi"}`))
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms/r1/pings", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, "r1", record["room_code"])
	}
}
