package motd

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

type fakeMotdRepository struct {
	docs []domain.Document
}

func (f *fakeMotdRepository) Create(_ context.Context, motd *domain.Motd) (domain.Document, error) {
	doc := domain.Document{
		"_id":       primitive.NewObjectID(),
		"room_code": motd.RoomCode,
		"text":      motd.Text,
		"author":    motd.Author,
		"at":        motd.At,
	}
	f.docs = append(f.docs, doc)
	return doc, nil
}

func (f *fakeMotdRepository) ListByRoom(_ context.Context, roomCode string, limit int64) ([]domain.Document, error) {
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

func newTestRouter(repo domain.MotdRepository) http.Handler {
	h := NewHandler(repo, nil)

	r := chi.NewRouter()
	r.Post("/rooms/{code}/motd", h.CreateMotdHandler)
	r.Get("/rooms/{code}/motd", h.ListMotdHandler)
	return r
}

func postMotd(t *testing.T, router http.Handler, code string, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rooms/"+code+"/motd", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)
	return w
}

func listMotd(t *testing.T, router http.Handler, target string) []map[string]any {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	return records
}

func TestListMotd_NewestFirst(t *testing.T) {
	router := newTestRouter(&fakeMotdRepository{})

	for _, text := range []string{"first", "second", "third"} {
		w := postMotd(t, router, "r1", `{"text": "`+text+`"}`)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	}

	records := listMotd(t, router, "/rooms/r1/motd")
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0]["text"])
	assert.Equal(t, "second", records[1]["text"])
	assert.Equal(t, "first", records[2]["text"])
}

func TestListMotd_HonorsLimit(t *testing.T) {
	router := newTestRouter(&fakeMotdRepository{})

	for _, text := range []string{"a", "b", "c"} {
		postMotd(t, router, "r1", `{"text": "`+text+`"}`)
	}

	records := listMotd(t, router, "/rooms/r1/motd?limit=2")
	require.Len(t, records, 2)
	assert.Equal(t, "c", records[0]["text"])
}

func TestListMotd_EmptyRoomIsEmptyArray(t *testing.T) {
	router := newTestRouter(&fakeMotdRepository{})

	records := listMotd(t, router, "/rooms/empty/motd")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCreateMotd_RejectsOutOfBoundsText(t *testing.T) {
	router := newTestRouter(&fakeMotdRepository{})

	w := postMotd(t, router, "r1", `{"text": ""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	long := strings.Repeat("x", domain.MaxMotdTextLength+1)
	w = postMotd(t, router, "r1", `{"text": "`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateMotd_OptionalAuthor(t *testing.T) {
	repo := &fakeMotdRepository{}
	router := newTestRouter(repo)

	w := postMotd(t, router, "r1", `{"text": "hello", "author": "aya"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "aya", record["author"])
	assert.NotEmpty(t, record["at"])
}
