package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/BoyTiger-1/budget-ai/internal/core"
)

const maxBodyBytes = 1 << 20

// timeNow is swapped out in tests that pin the reporting windows. It
// returns UTC so window boundaries line up with the store's UTC
// timestamps on servers in any zone.
var timeNow = func() time.Time { return time.Now().UTC() }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError emits the {"error": ...} shape every failure path uses.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// parsePeriod reads the period query parameter, defaulting to month.
// Unknown tokens pass through; the window resolver treats them as
// all-time.
func parsePeriod(r *http.Request) string {
	if p := r.URL.Query().Get("period"); p != "" {
		return p
	}
	return core.PeriodMonth
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
