// Package store persists chat sessions, transcripts, analytics events,
// and escalation records in sqlite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/db"
)

// Session is one chat session row.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId,omitempty"`
	CurrentPage string    `json:"currentPage"`
	UserAgent   string    `json:"userAgent,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Message is one transcript entry. Metadata is a JSON object string.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
}

// IntentCount pairs an intent with how often it was detected.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}

// Summary aggregates the analytics table for the dashboard endpoint.
type Summary struct {
	TotalSessions   int           `json:"totalSessions"`
	TotalMessages   int           `json:"totalMessages"`
	TotalEvents     int           `json:"totalEvents"`
	EscalationRate  float64       `json:"escalationRate"`
	AvgConfidence   float64       `json:"avgConfidence"`
	TopIntents      []IntentCount `json:"topIntents"`
	OpenEscalations int           `json:"openEscalations"`
}

// EscalationRecord is one persisted escalation.
type EscalationRecord struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"sessionId"`
	Reason         string    `json:"reason"`
	Priority       string    `json:"priority"`
	ContextSummary string    `json:"contextSummary"`
	Resolved       bool      `json:"resolved"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Store manages persistence of sessions, messages, analytics, and
// escalations.
type Store struct {
	db *db.DB
}

// NewStore creates a store over an open database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// CreateSession creates a new chat session.
func (s *Store) CreateSession(ctx context.Context, userID, currentPage, userAgent, referrer string) (*Session, error) {
	if currentPage == "" {
		currentPage = "/"
	}
	now := time.Now().UTC()
	sess := Session{
		ID:          uuid.New().String(),
		UserID:      userID,
		CurrentPage: currentPage,
		UserAgent:   userAgent,
		Referrer:    referrer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, user_id, current_page, user_agent, referrer, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.UserID, sess.CurrentPage, sess.UserAgent, sess.Referrer, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return &sess, nil
}

// GetSession retrieves a session by ID. Returns nil when not found.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, current_page, user_agent, referrer, created_at, updated_at
		 FROM chat_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.UserID, &sess.CurrentPage, &sess.UserAgent, &sess.Referrer, &sess.CreatedAt, &sess.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}
	return &sess, nil
}

// AppendMessage stores one transcript entry and bumps the session
// timestamp. Unknown sessions are created on the fly so transcripts
// survive a server restart mid-conversation.
func (s *Store) AppendMessage(ctx context.Context, sessionID, sender, content string, metadata map[string]any) error {
	if err := s.ensureSession(ctx, sessionID); err != nil {
		return err
	}

	meta := "{}"
	if len(metadata) > 0 {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("encoding message metadata: %w", err)
		}
		meta = string(raw)
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, session_id, sender, content, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, sender, content, meta, now,
	)
	if err != nil {
		return fmt.Errorf("adding message: %w", err)
	}

	s.db.ExecContext(ctx, `UPDATE chat_sessions SET updated_at = ? WHERE id = ?`, now, sessionID)
	return nil
}

// Messages returns all messages for a session, oldest first.
func (s *Store) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, sender, content, metadata, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY created_at ASC, id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Content, &m.Metadata, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MessageCount returns the number of messages stored for a session.
func (s *Store) MessageCount(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE session_id = ?`, sessionID,
	).Scan(&count)
	return count, err
}

// AppendAnalytics stores one per-turn analytics event.
func (s *Store) AppendAnalytics(ctx context.Context, sessionID, intent string, confidence float64, escalated bool, page string, messageLength int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_analytics (id, session_id, intent, confidence, escalation_triggered, page_context, message_length, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), sessionID, intent, confidence, escalated, page, messageLength, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("adding analytics event: %w", err)
	}
	return nil
}

// RecordEscalation stores an escalation for the hand-off queue.
func (s *Store) RecordEscalation(ctx context.Context, sessionID string, esc auralis.Escalation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO escalations (id, session_id, reason, priority, context_summary, resolved, created_at)
		 VALUES (?, ?, ?, ?, ?, 0, ?)`,
		uuid.New().String(), sessionID, esc.Reason, string(esc.Priority), esc.ContextSummary, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording escalation: %w", err)
	}
	return nil
}

// OpenEscalations returns unresolved escalations, newest first.
func (s *Store) OpenEscalations(ctx context.Context) ([]EscalationRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, reason, priority, context_summary, resolved, created_at
		 FROM escalations WHERE resolved = 0 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying escalations: %w", err)
	}
	defer rows.Close()

	var records []EscalationRecord
	for rows.Next() {
		var r EscalationRecord
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Reason, &r.Priority, &r.ContextSummary, &r.Resolved, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning escalation: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ResolveEscalation marks an escalation as handled.
func (s *Store) ResolveEscalation(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE escalations SET resolved = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("resolving escalation: %w", err)
	}
	return nil
}

// AnalyticsSummary aggregates the analytics table.
func (s *Store) AnalyticsSummary(ctx context.Context) (*Summary, error) {
	var sum Summary

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&sum.TotalSessions); err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages`).Scan(&sum.TotalMessages); err != nil {
		return nil, fmt.Errorf("counting messages: %w", err)
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(confidence), 0),
		        COALESCE(AVG(CASE WHEN escalation_triggered THEN 1.0 ELSE 0.0 END), 0)
		 FROM chat_analytics`,
	).Scan(&sum.TotalEvents, &sum.AvgConfidence, &sum.EscalationRate)
	if err != nil {
		return nil, fmt.Errorf("aggregating analytics: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM escalations WHERE resolved = 0`).Scan(&sum.OpenEscalations); err != nil {
		return nil, fmt.Errorf("counting open escalations: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT intent, COUNT(*) AS n FROM chat_analytics
		 GROUP BY intent ORDER BY n DESC, intent ASC LIMIT 5`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying top intents: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ic IntentCount
		if err := rows.Scan(&ic.Intent, &ic.Count); err != nil {
			return nil, fmt.Errorf("scanning intent count: %w", err)
		}
		sum.TopIntents = append(sum.TopIntents, ic)
	}
	return &sum, rows.Err()
}

// ensureSession inserts a minimal session row when none exists yet.
func (s *Store) ensureSession(ctx context.Context, sessionID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_sessions WHERE id = ?`, sessionID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking session: %w", err)
	}
	if exists > 0 {
		return nil
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, user_id, current_page, user_agent, referrer, created_at, updated_at)
		 VALUES (?, '', '/', '', '', ?, ?)`,
		sessionID, now, now,
	)
	if err != nil {
		return fmt.Errorf("creating implicit session: %w", err)
	}
	return nil
}
