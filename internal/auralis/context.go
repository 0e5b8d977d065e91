package auralis

import (
	"sync"
	"time"
)

// NewContext creates the conversation context for a freshly started session.
func NewContext(page, userAgent, referrer string) *Context {
	now := time.Now().UTC()
	if page == "" {
		page = "/"
	}
	return &Context{
		CurrentPage:      page,
		UserAgent:        userAgent,
		Referrer:         referrer,
		SessionStartTime: now,
		LastActivity:     now,
	}
}

// Touch refreshes the context for a new inbound request: updates the page
// and user agent if supplied, bumps the message counter, and records
// activity.
func (c *Context) Touch(page, userAgent, referrer string) {
	if page != "" {
		c.CurrentPage = page
	}
	if userAgent != "" {
		c.UserAgent = userAgent
	}
	if referrer != "" {
		c.Referrer = referrer
	}
	c.MessageCount++
	c.LastActivity = time.Now().UTC()
}

// RecordMessage appends the raw message to the message history, and the
// detection to the intent history when one is supplied.
func (c *Context) RecordMessage(message string, det *Detection) {
	c.messageHistory = append(c.messageHistory, message)
	if det != nil {
		c.intentHistory = append(c.intentHistory, *det)
	}
}

// MessageHistory returns the raw messages recorded so far, oldest first.
func (c *Context) MessageHistory() []string {
	out := make([]string, len(c.messageHistory))
	copy(out, c.messageHistory)
	return out
}

// IntentHistory returns the detections recorded so far, oldest first.
func (c *Context) IntentHistory() []Detection {
	out := make([]Detection, len(c.intentHistory))
	copy(out, c.intentHistory)
	return out
}

// Registry tracks the live Context for each session. Contexts are created
// on first sight and dropped when the session is evicted; persistence of
// transcripts lives in the store, not here.
type Registry struct {
	mu       sync.Mutex
	contexts map[string]*Context
}

// NewRegistry creates an empty context registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*Context)}
}

// Get returns the context for the session, creating it if needed.
func (r *Registry) Get(sessionID, page, userAgent, referrer string) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx, ok := r.contexts[sessionID]; ok {
		return ctx
	}
	ctx := NewContext(page, userAgent, referrer)
	r.contexts[sessionID] = ctx
	return ctx
}

// Evict drops the context for a finished session.
func (r *Registry) Evict(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contexts, sessionID)
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.contexts)
}
