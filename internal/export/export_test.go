package export

import (
	"strings"
	"testing"
	"time"

	"github.com/limitless-infotech/auralis/internal/store"
)

func TestRenderTranscript(t *testing.T) {
	e, err := NewExporter()
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	sess := &store.Session{
		ID:          "s1",
		CurrentPage: "/pricing",
		CreatedAt:   created,
	}
	messages := []store.Message{
		{ID: "m1", SessionID: "s1", Sender: "user", Content: "costs <b>please</b>", Metadata: "{}", CreatedAt: created},
		{ID: "m2", SessionID: "s1", Sender: "bot", Content: "Our tiers:\n\n- **Starter**\n- Professional", Metadata: `{"intent":"pricing"}`, CreatedAt: created.Add(time.Second)},
	}

	out, err := e.Render(sess, messages)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "Session s1") {
		t.Errorf("missing session header:\n%s", html)
	}
	if !strings.Contains(html, "page /pricing") {
		t.Errorf("missing page:\n%s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;please&lt;/b&gt;") {
		t.Errorf("user content not escaped:\n%s", html)
	}
	if !strings.Contains(html, "<strong>Starter</strong>") {
		t.Errorf("bot markdown not rendered:\n%s", html)
	}
	if !strings.Contains(html, "[pricing]") {
		t.Errorf("intent tag missing:\n%s", html)
	}
}

func TestRenderRequiresSession(t *testing.T) {
	e, err := NewExporter()
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	if _, err := e.Render(nil, nil); err == nil {
		t.Fatal("expected error for nil session")
	}
}
