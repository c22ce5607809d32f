package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"voiceorder-service/internal/catalog"
)

// CatalogInfo: что health знает о каталоге (catalog.Store).
type CatalogInfo interface {
	Snapshot() *catalog.Index
	LoadedAt() time.Time
}

// Health отвечает 200, пока загружен непустой каталог, иначе 503.
func Health(c CatalogInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := c.Snapshot().Stats()
		status, code := "ok", http.StatusOK
		if st.Entries == 0 {
			status, code = "empty catalog", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":    status,
			"catalog":   st,
			"loaded_at": c.LoadedAt().UTC().Format(time.RFC3339),
		})
	}
}
