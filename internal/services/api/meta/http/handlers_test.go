package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	phttp "issuegate/internal/platform/net/http"
	metahttp "issuegate/internal/services/api/meta/http"
)

func newTestMux(t *testing.T) stdhttp.Handler {
	t.Helper()
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	metahttp.Register(r, metahttp.Deps{
		ServiceName: "issuegate-api",
		StartedAt:   time.Now().Add(-5 * time.Minute),
	})
	return m
}

func getJSON(t *testing.T, mux stdhttp.Handler, path string) map[string]any {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("GET %s status = %d", path, rec.Code)
	}
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return env.Data
}

func TestHealth(t *testing.T) {
	data := getJSON(t, newTestMux(t), "/health")
	if data["ok"] != true {
		t.Fatalf("data = %v", data)
	}
	if data["service"] != "issuegate-api" {
		t.Fatalf("service = %v", data["service"])
	}
}

func TestVersion(t *testing.T) {
	data := getJSON(t, newTestMux(t), "/version")
	if data["service"] != "issuegate-api" {
		t.Fatalf("data = %v", data)
	}
	if data["version"] == "" {
		t.Fatal("version should default to dev")
	}
}

func TestService(t *testing.T) {
	data := getJSON(t, newTestMux(t), "/service")
	uptime, ok := data["uptime"].(float64)
	if !ok || uptime < 299 {
		t.Fatalf("uptime = %v", data["uptime"])
	}
}

func TestDetector(t *testing.T) {
	data := getJSON(t, newTestMux(t), "/detector")
	if data["detector_version"] != float64(1) {
		t.Fatalf("data = %v", data)
	}
	if _, ok := data["build"].(map[string]any); !ok {
		t.Fatalf("build = %v", data["build"])
	}
}
