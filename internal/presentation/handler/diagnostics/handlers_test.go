package diagnostics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/hilthontt/companion/internal/persistence/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	h := NewHandler(db.NewStore(nil))

	w := httptest.NewRecorder()
	h.RootHandler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Long Distance Companion Backend", resp["message"])
	assert.Equal(t, true, resp["ok"])
}

func TestTestDatabaseHandler_StoreDown(t *testing.T) {
	h := NewHandler(db.NewStore(nil))

	w := httptest.NewRecorder()
	h.TestDatabaseHandler(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code, "diagnostics must not fail when the store is down")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "✅ Running", resp["backend"])
	assert.Equal(t, "❌ Not Available", resp["database"])
	assert.Equal(t, "Not Connected", resp["connection_status"])
	assert.Equal(t, []any{}, resp["collections"])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	assert.Equal(t, "abc", truncate("abcdef", 3))
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	// each rune is 3 bytes; a 4-byte cut must back off to the first rune
	assert.Equal(t, "日", truncate("日本語", 4))
	assert.Equal(t, "", truncate("日本語", 2))
	assert.True(t, utf8.ValidString(truncate("connexion à la base refusée", 25)))
}
