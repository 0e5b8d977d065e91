package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/auralis"
)

// pageContext carries the visitor's browsing context with a chat request.
type pageContext struct {
	CurrentPage string `json:"currentPage"`
	UserAgent   string `json:"userAgent"`
	Referrer    string `json:"referrer"`
}

type chatRequest struct {
	Message   string       `json:"message"`
	SessionID string       `json:"sessionId"`
	Context   *pageContext `json:"context"`
}

type sessionRequest struct {
	UserID  string       `json:"userId"`
	Context *pageContext `json:"context"`
}

type commandRequest struct {
	Command string `json:"command"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// handleChat runs one conversation turn and streams the reply word by
// word. Turn metadata travels in response headers so the client can render
// suggestions while the text is still arriving.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "session-" + uuid.New().String()
	}

	var page, userAgent, referrer string
	if req.Context != nil {
		page = req.Context.CurrentPage
		referrer = req.Context.Referrer
		userAgent = req.Context.UserAgent
	}
	if userAgent == "" {
		userAgent = r.UserAgent()
	}

	turn, err := s.pipeline.Process(r.Context(), auralis.Request{
		SessionID: sessionID,
		Message:   req.Message,
		Page:      page,
		UserAgent: userAgent,
		Referrer:  referrer,
	})
	if err != nil {
		s.logger.Error("chat turn failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	suggestions, _ := json.Marshal(turn.Suggestions)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Session-ID", turn.SessionID)
	w.Header().Set("X-Auralis-Intent", turn.Detection.Intent)
	w.Header().Set("X-Auralis-Suggestions", string(suggestions))
	if turn.Escalation != nil {
		w.Header().Set("X-Auralis-Escalation", string(turn.Escalation.Priority))
	}

	s.streamReply(w, r, turn.Reply)
}

// streamReply writes the reply one space-delimited word at a time, pausing
// between words. Splitting on single spaces keeps newlines attached to
// their neighboring word so formatted replies survive the stream.
func (s *Server) streamReply(w http.ResponseWriter, r *http.Request, reply string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.Write([]byte(reply))
		return
	}

	words := strings.Split(reply, " ")
	for i, word := range words {
		if i > 0 {
			select {
			case <-r.Context().Done():
				return
			case <-time.After(s.cfg.StreamDelay):
			}
			w.Write([]byte(" "))
		}
		w.Write([]byte(word))
		flusher.Flush()
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "session store not configured")
		return
	}

	var req sessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	var page, userAgent, referrer string
	if req.Context != nil {
		page = req.Context.CurrentPage
		userAgent = req.Context.UserAgent
		referrer = req.Context.Referrer
	}
	if userAgent == "" {
		userAgent = r.UserAgent()
	}

	sess, err := s.store.CreateSession(r.Context(), req.UserID, page, userAgent, referrer)
	if err != nil {
		s.logger.Error("creating session failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	writeJSON(w, http.StatusOK, auralis.WelcomeFor(page))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "session store not configured")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	sess, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.logger.Error("loading session failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	messages, err := s.store.Messages(r.Context(), sessionID)
	if err != nil {
		s.logger.Error("loading messages failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":  sess,
		"messages": messages,
	})
}

// handleExport serves a session transcript as a standalone HTML document.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil || s.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, "transcript export not configured")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	sess, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		s.logger.Error("loading session failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	messages, err := s.store.Messages(r.Context(), sessionID)
	if err != nil {
		s.logger.Error("loading messages failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load messages")
		return
	}

	out, err := s.exporter.Render(sess, messages)
	if err != nil {
		s.logger.Error("rendering transcript failed", zap.String("session_id", sessionID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render transcript")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transcript-`+sessionID+`.html"`)
	w.Write(out)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "session store not configured")
		return
	}

	sum, err := s.store.AnalyticsSummary(r.Context())
	if err != nil {
		s.logger.Error("analytics summary failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to aggregate analytics")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleEnterpriseCommand(w http.ResponseWriter, r *http.Request) {
	if s.interp == nil {
		writeError(w, http.StatusServiceUnavailable, "enterprise interpreter not configured")
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Command) == "" {
		writeError(w, http.StatusBadRequest, "command is required")
		return
	}

	reply := s.interp.ProcessCommand(r.Context(), req.Command)
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if s.interp == nil {
		writeError(w, http.StatusServiceUnavailable, "enterprise interpreter not configured")
		return
	}
	writeJSON(w, http.StatusOK, s.interp.Insights(r.Context()))
}
