package auralis

import (
	"fmt"
	"testing"
)

func TestContextTouchCountsMessages(t *testing.T) {
	ctx := NewContext("/", "", "")
	for i := 0; i < 4; i++ {
		ctx.Touch("", "", "")
	}
	if ctx.MessageCount != 4 {
		t.Fatalf("MessageCount = %d, want 4", ctx.MessageCount)
	}
}

func TestContextTouchUpdatesPage(t *testing.T) {
	ctx := NewContext("/services", "agent-1", "")
	ctx.Touch("/pricing", "", "https://example.com")

	if ctx.CurrentPage != "/pricing" {
		t.Errorf("CurrentPage = %q, want /pricing", ctx.CurrentPage)
	}
	if ctx.UserAgent != "agent-1" {
		t.Errorf("UserAgent = %q, want the original to survive an empty update", ctx.UserAgent)
	}
	if ctx.Referrer != "https://example.com" {
		t.Errorf("Referrer = %q", ctx.Referrer)
	}
}

func TestContextDefaultsPageToRoot(t *testing.T) {
	ctx := NewContext("", "", "")
	if ctx.CurrentPage != "/" {
		t.Fatalf("CurrentPage = %q, want /", ctx.CurrentPage)
	}
}

func TestContextRecordMessage(t *testing.T) {
	ctx := NewContext("/", "", "")
	det := Detection{Intent: "pricing"}

	ctx.RecordMessage("first", &det)
	ctx.RecordMessage("second", nil)

	msgs := ctx.MessageHistory()
	if len(msgs) != 2 || msgs[0] != "first" || msgs[1] != "second" {
		t.Fatalf("MessageHistory = %v", msgs)
	}
	intents := ctx.IntentHistory()
	if len(intents) != 1 || intents[0].Intent != "pricing" {
		t.Fatalf("IntentHistory = %v", intents)
	}
}

func TestContextHistoryReturnsCopies(t *testing.T) {
	ctx := NewContext("/", "", "")
	ctx.RecordMessage("original", &Detection{Intent: "services"})

	msgs := ctx.MessageHistory()
	msgs[0] = "mutated"
	intents := ctx.IntentHistory()
	intents[0].Intent = "mutated"

	if ctx.MessageHistory()[0] != "original" {
		t.Fatal("MessageHistory exposes internal slice")
	}
	if ctx.IntentHistory()[0].Intent != "services" {
		t.Fatal("IntentHistory exposes internal slice")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	first := r.Get("s1", "/pricing", "", "")
	again := r.Get("s1", "/other", "", "")
	if first != again {
		t.Fatal("Get returned a fresh context for an existing session")
	}
	if again.CurrentPage != "/pricing" {
		t.Fatalf("CurrentPage = %q, existing context must not be re-created", again.CurrentPage)
	}

	r.Get("s2", "/", "", "")
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	r.Evict("s1")
	if r.Len() != 1 {
		t.Fatalf("Len after evict = %d, want 1", r.Len())
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				r.Get(fmt.Sprintf("s%d", n), "/", "", "")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	if r.Len() != 8 {
		t.Fatalf("Len = %d, want 8", r.Len())
	}
}
