// Package auralis implements the Auralis conversational pipeline: intent
// classification, per-session context, response generation with a strict
// degrade chain, escalation detection, and proactive suggestions.
package auralis

import "time"

// Detection is the result of classifying a single user message.
// It is immutable once produced.
type Detection struct {
	Intent           string   `json:"intent"`
	Confidence       float64  `json:"confidence"`
	Entities         []string `json:"entities"`
	SuggestedActions []string `json:"suggestedActions"`
}

// Priority ranks an escalation for the human hand-off queue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Escalation flags a conversation for human hand-off.
type Escalation struct {
	Reason         string      `json:"reason"`
	Priority       Priority    `json:"priority"`
	ContextSummary string      `json:"contextSummary"`
	UserDetails    UserDetails `json:"userDetails"`
}

// UserDetails carries optional caller-supplied identity enrichment.
// The pipeline itself never fills it.
type UserDetails struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AccountID string `json:"accountId,omitempty"`
}

// Context holds the mutable per-conversation state. One instance per
// session; turns within a session are processed sequentially.
type Context struct {
	CurrentPage      string
	UserAgent        string
	Referrer         string
	SessionStartTime time.Time
	MessageCount     int
	LastActivity     time.Time

	messageHistory []string
	intentHistory  []Detection
}

// Turn is the result of processing one inbound message.
type Turn struct {
	SessionID   string      `json:"sessionId"`
	Reply       string      `json:"reply"`
	Detection   Detection   `json:"detection"`
	Suggestions []string    `json:"suggestions"`
	Escalation  *Escalation `json:"escalation,omitempty"`
}
