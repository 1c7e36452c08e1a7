package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartir_service/internal/ircode"
	"smartir_service/internal/service"
)

func addAuth(req *http.Request) {
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}

func TestConvertHandlers_ProntoAndRaw(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	conv := &mockConverter{convertRes: service.ConvertResult{Base64: "JgAGAJYqFQwNBQ==", CarrierHz: 38029, Pulses: 4}}
	s := &service.Service{Authorization: auth, Converter: conv}
	r := newTestRouter(s)

	// Without auth → 401
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert/pronto", bytes.NewBufferString(`{"code":"0000 006D 0001 0000 0015 0040"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// Pronto success
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/convert/pronto", bytes.NewBufferString(`{"code":"0000 006D 0001 0000 0015 0040"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuth(req)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("pronto status=%d, body=%s", w.Code, w.Body.String())
	}
	var res service.ConvertResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.CarrierHz != 38029 || res.Pulses != 4 || res.Base64 == "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if conv.lastProntoCode != "0000 006D 0001 0000 0015 0040" {
		t.Fatalf("code not passed through: %q", conv.lastProntoCode)
	}

	// Raw success with protocol tag
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/convert/raw", bytes.NewBufferString(`{"pulses":[9000,-4500,560],"protocol":"NEC"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuth(req)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("raw status=%d, body=%s", w.Code, w.Body.String())
	}
	if len(conv.lastRawValues) != 3 || conv.lastRawValues[1] != -4500 {
		t.Fatalf("pulses not passed through: %v", conv.lastRawValues)
	}
	if conv.lastProtocol != "NEC" {
		t.Fatalf("protocol not passed through: %q", conv.lastProtocol)
	}

	// Missing required field → 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/convert/pronto", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	addAuth(req)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing code, got %d", w.Code)
	}
}

func TestConvertHandlers_EngineErrorsMapTo422(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	conv := &mockConverter{convertErr: &ircode.ConvertError{Kind: ircode.UnsupportedProtocol, Msg: "pronto type 0x5000 is not raw"}}
	s := &service.Service{Authorization: auth, Converter: conv}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert/pronto", bytes.NewBufferString(`{"code":"5000 006D 0001 0000 0015 0040"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuth(req)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for engine error, got %d (body=%s)", w.Code, w.Body.String())
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error == "" {
		t.Fatalf("error message missing in body: %s", w.Body.String())
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != statusOK {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}
