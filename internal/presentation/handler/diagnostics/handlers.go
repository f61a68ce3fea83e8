package diagnostics

import (
	"net/http"
	"os"
	"unicode/utf8"

	"github.com/hilthontt/companion/internal/infrastructure/json"
	"github.com/hilthontt/companion/internal/persistence/db"
)

type Handler struct {
	store *db.Store
}

func NewHandler(store *db.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// RootHandler godoc
// @Summary      Liveness payload
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} rootResponse
// @Router       / [get]
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	json.Write(w, http.StatusOK, rootResponse{
		Message: "Long Distance Companion Backend",
		OK:      true,
	})
}

// TestDatabaseHandler godoc
// @Summary      Best-effort store introspection
// @Description  Reports connection state descriptively; this endpoint never fails
// @Tags         diagnostics
// @Produce      json
// @Success      200 {object} testResponse
// @Router       /test [get]
func (h *Handler) TestDatabaseHandler(w http.ResponseWriter, r *http.Request) {
	resp := testResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store.Connected() {
		resp.Database = "✅ Available"
		if os.Getenv("DATABASE_URL") != "" {
			resp.DatabaseURL = "✅ Set"
		}
		if name := h.store.Name(); name != "" {
			resp.DatabaseName = name
		} else {
			resp.DatabaseName = "unknown"
		}
		resp.ConnectionStatus = "Connected"

		if collections, err := h.store.Collections(r.Context()); err != nil {
			resp.Database = "⚠️ Connected but Error: " + truncate(err.Error(), 80)
		} else {
			resp.Collections = collections
			resp.Database = "✅ Connected & Working"
		}
	}

	json.Write(w, http.StatusOK, resp)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
