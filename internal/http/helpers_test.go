package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"
)

// Window boundaries must be computed in UTC: the store writes UTC
// timestamps, and a local-zone clock east of UTC would widen the month
// window by a day.
func TestTimeNowIsUTC(t *testing.T) {
	if loc := timeNow().Location(); loc != time.UTC {
		t.Errorf("timeNow().Location() = %v, want UTC", loc)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"default", "/api/summary", "month"},
		{"month", "/api/summary?period=month", "month"},
		{"week", "/api/summary?period=week", "week"},
		{"all", "/api/summary?period=all", "all"},
		{"unknown passes through", "/api/summary?period=decade", "decade"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			if got := parsePeriod(r); got != tt.want {
				t.Errorf("parsePeriod() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("DELETE", "/api/expenses/1", nil)
			r.SetPathValue("id", tt.value)
			got, err := pathID(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("pathID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("pathID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	writeError(w, 400, "Category already exists")

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["error"] != "Category already exists" {
		t.Errorf("error = %q", body["error"])
	}
}
