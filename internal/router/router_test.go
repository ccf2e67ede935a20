package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-care-records/internal/adapters/storage/blob"
	"pet-care-records/internal/adapters/storage/document"
	"pet-care-records/internal/persistence"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := persistence.New(document.New(blob.NewMemory(), logger.Nop()))
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store, Backend: store.Backend()}))
	t.Cleanup(func() {
		ts.Close()
		_ = store.Close()
	})
	return ts
}

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := newServer(t)

	// 1) Alta de mascota con id propio
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/p1", map[string]any{
			"name":    "Rex",
			"species": "Dog",
			"dob":     "2020-03-14",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put pet, got %d body=%s", st, string(body))
		}
	}

	// 2) Producto asociado
	{
		st, body := doReq(t, ts.URL, "PUT", "/products/pr1", map[string]any{
			"name":   "Flea drops",
			"type":   "Medicamento",
			"pet_id": "p1",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put product, got %d body=%s", st, string(body))
		}
	}

	// 3) El listado trae pet_name resuelto
	{
		st, body := doReq(t, ts.URL, "GET", "/products", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list products, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		mustDecode(t, body, &items)
		if len(items) != 1 || items[0]["id"] != "pr1" || items[0]["pet_name"] != "Rex" {
			t.Fatalf("unexpected products: %s", string(body))
		}
	}

	// 4) Registro de salud y cita por POST (id generado)
	recordID := create(t, ts.URL, "/health-records", map[string]any{
		"type":   "Vacina",
		"date":   "2024-04-10",
		"pet_id": "p1",
	})
	if !strings.HasPrefix(recordID, "health_") {
		t.Fatalf("expected generated health id, got %q", recordID)
	}
	create(t, ts.URL, "/appointments", map[string]any{
		"type":   "Consulta",
		"date":   "2024-06-02",
		"time":   "09:30",
		"pet_id": "p1",
	})

	// 5) Listados por mascota
	for _, path := range []string{"/pets/p1/products", "/pets/p1/health-records", "/pets/p1/appointments"} {
		st, body := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 %s, got %d", path, st)
		}
		var items []map[string]any
		mustDecode(t, body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 item in %s, got %s", path, string(body))
		}
	}

	// 6) Borrar la mascota limpia todo lo asociado
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/p1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete pet, got %d body=%s", st, string(body))
		}
		var rep struct {
			PetDeleted bool           `json:"pet_deleted"`
			Removed    map[string]int `json:"removed"`
			Failures   []string       `json:"failures"`
		}
		mustDecode(t, body, &rep)
		if !rep.PetDeleted || rep.Removed["products"] != 1 || rep.Removed["healthRecords"] != 1 || rep.Removed["appointments"] != 1 {
			t.Fatalf("unexpected cascade report: %s", string(body))
		}
		if len(rep.Failures) != 0 {
			t.Fatalf("unexpected failures: %v", rep.Failures)
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/products", nil)
		if st != http.StatusOK || strings.TrimSpace(string(body)) != "[]" {
			t.Fatalf("expected empty products after cascade, got %d body=%s", st, string(body))
		}
	}

	// 7) Borrado idempotente
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/p1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 on second delete, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/products/pr1", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting missing product, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/p1", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_AppointmentsDateRange(t *testing.T) {
	ts := newServer(t)

	for _, d := range []string{"2024-05-01", "2024-05-10", "2024-05-20", "2024-05-21"} {
		create(t, ts.URL, "/appointments", map[string]any{"type": "Consulta", "date": d})
	}

	st, body := doReq(t, ts.URL, "GET", "/appointments?from=2024-05-10&to=2024-05-20", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var items []map[string]any
	mustDecode(t, body, &items)
	if len(items) != 2 {
		t.Fatalf("expected 2 appointments in range, got %s", string(body))
	}
	if items[0]["date"] != "2024-05-10" || items[1]["date"] != "2024-05-20" {
		t.Fatalf("unexpected dates: %s", string(body))
	}

	for _, q := range []string{"?from=2024-05-20&to=2024-05-10", "?from=2024-05-10", "?from=10/05/2024&to=2024-05-20"} {
		st, _ := doReq(t, ts.URL, "GET", "/appointments"+q, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", q, st)
		}
	}
}

func TestHTTP_RejectsInvalidInput(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		method, path string
		body         any
	}{
		{"POST", "/pets", map[string]any{"name": "Rex"}},
		{"PUT", "/products/pr1", map[string]any{"name": "Juguete", "type": "Brinquedo"}},
		{"PUT", "/products/pr1", map[string]any{"name": "Flea drops", "type": "Medicamento", "pet_id": "ghost"}},
		{"POST", "/health-records", map[string]any{"type": "Vacina", "date": "2024-01-01"}},
		{"POST", "/appointments", map[string]any{"type": "Consulta", "date": "01/02/2024"}},
	}
	for _, c := range cases {
		st, body := doReq(t, ts.URL, c.method, c.path, c.body)
		if st != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d body=%s", c.method, c.path, st, string(body))
		}
	}

	req, _ := http.NewRequest("POST", ts.URL+"/pets", strings.NewReader("{not json"))
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken json, got %d", res.StatusCode)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || !strings.HasPrefix(string(body), "ok") {
		t.Fatalf("expected ok health, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !strings.Contains(string(body), "/pets/{petID}") {
		t.Fatalf("swagger doc missing pet routes")
	}
}

func TestHTTP_EchoesRequestID(t *testing.T) {
	ts := newServer(t)

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.Header.Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}

func create(t *testing.T, baseURL, path string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}
	var out struct {
		ID string `json:"id"`
	}
	mustDecode(t, body, &out)
	if out.ID == "" {
		t.Fatalf("expected generated id, body=%s", string(body))
	}
	return out.ID
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
