package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"smartir_service/internal/models"
	"smartir_service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 1 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=20s", 1 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=20000", 1 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 1 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 1 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func newWSServer(jobs *mockJobs) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(&service.Service{Jobs: jobs}, nil)
	r.GET("/ws", h.wsJobProgress)
	return httptest.NewServer(r)
}

func wsURL(srv *httptest.Server, query string) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query
	return u.String()
}

type envelope struct {
	Type  string          `json:"type"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func TestWebSocket_JobStream_InitialAndPeriodic(t *testing.T) {
	jobs := &mockJobs{
		snap: models.JobSnapshot{
			JobID:     "job-1",
			Status:    models.JobRunning,
			Total:     4,
			Completed: 2,
		},
		snapOK: true,
	}
	srv := newWSServer(jobs)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "job=job-1&interval_ms=20"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// Read initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "snapshot" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var snap models.JobSnapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.JobID != "job-1" || snap.Completed != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "snapshot" {
		t.Fatalf("expected type=snapshot, got %+v", env)
	}
	if jobs.lastJobID != "job-1" {
		t.Fatalf("job id not passed to Snapshot: %q", jobs.lastJobID)
	}
}

func TestWebSocket_FinishedJob_FinalSnapshotThenClose(t *testing.T) {
	jobs := &mockJobs{
		snap: models.JobSnapshot{
			JobID:     "job-2",
			Status:    models.JobFinished,
			Total:     1,
			Completed: 1,
			Stored:    1,
		},
		snapOK: true,
	}
	srv := newWSServer(jobs)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "job=job-2"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The final snapshot arrives, then the server closes.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read final: %v", err)
	}
	var snap models.JobSnapshot
	_ = json.Unmarshal(env.Data, &snap)
	if snap.Status != models.JobFinished {
		t.Fatalf("expected FINISHED snapshot, got %+v", snap)
	}

	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected closed connection, got message: %s", string(raw))
	}
}

func TestWebSocket_UnknownJobRejectedBeforeUpgrade(t *testing.T) {
	jobs := &mockJobs{snapOK: false}
	srv := newWSServer(jobs)
	defer srv.Close()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	if _, resp, err := dialer.Dial(wsURL(srv, "job=nope"), nil); err == nil {
		t.Fatalf("expected handshake failure for unknown job")
	} else if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 handshake response, got %+v", resp)
	}

	// Missing the job parameter entirely → 400
	if _, resp, err := dialer.Dial(wsURL(srv, ""), nil); err == nil {
		t.Fatalf("expected handshake failure without job parameter")
	} else if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 handshake response, got %+v", resp)
	}
}
