package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/db"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	st := store.NewStore(database)
	pipeline := auralis.NewPipeline(
		auralis.NewClassifier(),
		auralis.NewResponder(nil, "", nil, 0, nil),
		auralis.NewRegistry(),
		st,
		nil,
	)
	interp := enterprise.NewInterpreter(pipeline, st, nil)

	return New(Config{Port: 0, StreamDelay: time.Millisecond}, pipeline, st, interp, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestChatRequiresMessage(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.Router(), "/api/chat", map[string]string{"message": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "message is required") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestChatStreamsReplyWithHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.Router(), "/api/chat", map[string]any{
		"message": "how much does a website cost",
		"context": map[string]string{"currentPage": "/pricing"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	sessionID := rec.Header().Get("X-Session-ID")
	if !strings.HasPrefix(sessionID, "session-") {
		t.Errorf("X-Session-ID = %q, want a generated session id", sessionID)
	}
	if got := rec.Header().Get("X-Auralis-Intent"); got != "pricing" {
		t.Errorf("X-Auralis-Intent = %q, want pricing", got)
	}
	var suggestions []string
	if err := json.Unmarshal([]byte(rec.Header().Get("X-Auralis-Suggestions")), &suggestions); err != nil {
		t.Fatalf("X-Auralis-Suggestions is not JSON: %v", err)
	}
	if len(suggestions) == 0 {
		t.Error("no suggestions in header")
	}
	if rec.Header().Get("X-Auralis-Escalation") != "" {
		t.Error("unexpected escalation header")
	}

	body := rec.Body.String()
	if !strings.Contains(body, "USD 2,500") {
		t.Errorf("streamed body missing pricing copy:\n%s", body)
	}
}

func TestChatKeepsSession(t *testing.T) {
	s := newTestServer(t)

	first := postJSON(t, s.Router(), "/api/chat", map[string]string{
		"message":   "hello",
		"sessionId": "s-fixed",
	})
	if got := first.Header().Get("X-Session-ID"); got != "s-fixed" {
		t.Fatalf("X-Session-ID = %q, want the supplied id", got)
	}
}

func TestChatEscalationHeader(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.Router(), "/api/chat", map[string]string{
		"message": "urgent: production is down",
	})
	if got := rec.Header().Get("X-Auralis-Escalation"); got != "high" {
		t.Fatalf("X-Auralis-Escalation = %q, want high", got)
	}
}

func TestCreateSessionAndHistory(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.Router(), "/api/chat/session", map[string]any{
		"userId":  "u1",
		"context": map[string]string{"currentPage": "/pricing"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var sess store.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if sess.ID == "" || sess.CurrentPage != "/pricing" {
		t.Fatalf("session = %+v", sess)
	}

	postJSON(t, s.Router(), "/api/chat", map[string]string{
		"message":   "tell me about pricing",
		"sessionId": sess.ID,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/"+sess.ID, nil)
	hrec := httptest.NewRecorder()
	s.Router().ServeHTTP(hrec, req)

	if hrec.Code != http.StatusOK {
		t.Fatalf("history status = %d", hrec.Code)
	}
	var out struct {
		Session  store.Session   `json:"session"`
		Messages []store.Message `json:"messages"`
	}
	if err := json.Unmarshal(hrec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(out.Messages) != 2 {
		t.Fatalf("messages = %d, want user and bot", len(out.Messages))
	}
}

func TestHistoryNotFound(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/nope", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestWelcome(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/chat/welcome?page=/portfolio", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var welcome auralis.Welcome
	if err := json.Unmarshal(rec.Body.Bytes(), &welcome); err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if !strings.Contains(welcome.Message, "Portfolio") {
		t.Errorf("welcome = %+v", welcome)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	s := newTestServer(t)

	postJSON(t, s.Router(), "/api/chat", map[string]string{"message": "pricing info"})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/chatbot", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var sum store.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.TotalEvents != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestEnterpriseCommandEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.Router(), "/api/enterprise/command", map[string]string{
		"command": "show pending qa tasks",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no pending QA tasks") {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = postJSON(t, s.Router(), "/api/enterprise/command", map[string]string{"command": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTranscriptExport(t *testing.T) {
	s := newTestServer(t)

	postJSON(t, s.Router(), "/api/chat", map[string]string{
		"message":   "tell me about pricing",
		"sessionId": "s-export",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/s-export/export", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Session s-export") {
		t.Errorf("body missing transcript header:\n%s", rec.Body.String())
	}
}

func TestWebSocketChat(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if resp != nil && resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	if err := conn.WriteJSON(wsRequest{Type: "message", Content: "how much does it cost", Page: "/pricing"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out wsResponse
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Type != "response" || out.Intent != "pricing" {
		t.Fatalf("response = %+v", out)
	}
	if !strings.HasPrefix(out.SessionID, "session-") {
		t.Errorf("session id = %q", out.SessionID)
	}
	if out.Content == "" || len(out.Suggestions) == 0 {
		t.Errorf("response = %+v", out)
	}

	if err := conn.WriteJSON(wsRequest{Type: "bogus", Content: "x"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := conn.ReadJSON(&out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Type != "error" {
		t.Fatalf("response = %+v, want error frame", out)
	}
}
