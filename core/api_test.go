package core

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter_APIServicesReturnsJSON(t *testing.T) {
	setupSiteTemplates(t)

	cfg := defaultConfig()
	cfg.OutputDir = t.TempDir()
	router := newTestRouter(t, cfg, "dev")

	req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type: %s", ct)
	}

	var services []Service
	if err := json.NewDecoder(res.Body).Decode(&services); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(services))
	}
	if services[0].Title != "Classic Haircut" {
		t.Errorf("unexpected first service: %+v", services[0])
	}
}

func TestRouter_APIStatsReturnsJSON(t *testing.T) {
	setupSiteTemplates(t)

	cfg := defaultConfig()
	cfg.OutputDir = t.TempDir()
	router := newTestRouter(t, cfg, "dev")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	var stats []Stat
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 stats, got %d", len(stats))
	}
}

func TestRouter_UnknownAPIPathReturnsPlain404(t *testing.T) {
	setupSiteTemplates(t)

	cfg := defaultConfig()
	cfg.OutputDir = t.TempDir()
	router := newTestRouter(t, cfg, "dev")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleAPI_NotFoundErrorMapsTo404(t *testing.T) {
	setupSiteTemplates(t)

	cfg := defaultConfig()
	cfg.OutputDir = t.TempDir()
	router := newTestRouter(t, cfg, "dev")

	specs := []APIRouteSpec{{
		Path: "/api/missing",
		Handler: func(r *http.Request, params map[string]string) (any, error) {
			return nil, ErrNotFound
		},
	}}
	routes, err := compileAPIRoutes(specs)
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.handleAPI(rec, httptest.NewRequest(http.MethodGet, "/api/missing", nil), routes[0], map[string]string{})

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
