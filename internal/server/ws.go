package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/auralis"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type      string `json:"type"`       // "message" or "command"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
	Page      string `json:"page"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type        string   `json:"type"` // "response" or "error"
	SessionID   string   `json:"session_id"`
	Content     string   `json:"content"`
	Intent      string   `json:"intent,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Escalation  string   `json:"escalation,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendWSError(conn, "", "invalid message format")
			continue
		}

		if req.Content == "" {
			s.sendWSError(conn, req.SessionID, "content is required")
			continue
		}

		switch req.Type {
		case "message":
			s.handleWSMessage(conn, r, req)
		case "command":
			s.handleWSCommand(conn, r, req)
		default:
			s.sendWSError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleWSMessage(conn *websocket.Conn, r *http.Request, req wsRequest) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "session-" + uuid.New().String()
	}

	turn, err := s.pipeline.Process(r.Context(), auralis.Request{
		SessionID: sessionID,
		Message:   req.Content,
		Page:      req.Page,
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		s.sendWSError(conn, sessionID, "failed to process message")
		return
	}

	resp := wsResponse{
		Type:        "response",
		SessionID:   turn.SessionID,
		Content:     turn.Reply,
		Intent:      turn.Detection.Intent,
		Suggestions: turn.Suggestions,
	}
	if turn.Escalation != nil {
		resp.Escalation = string(turn.Escalation.Priority)
	}
	s.sendWSResponse(conn, resp)
}

func (s *Server) handleWSCommand(conn *websocket.Conn, r *http.Request, req wsRequest) {
	if s.interp == nil {
		s.sendWSError(conn, req.SessionID, "enterprise interpreter not configured")
		return
	}

	reply := s.interp.ProcessCommand(r.Context(), req.Content)
	s.sendWSResponse(conn, wsResponse{
		Type:      "response",
		SessionID: req.SessionID,
		Content:   reply,
	})
}

func (s *Server) sendWSResponse(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		s.logger.Warn("websocket write failed", zap.Error(err))
	}
}

func (s *Server) sendWSError(conn *websocket.Conn, sessionID, msg string) {
	s.sendWSResponse(conn, wsResponse{Type: "error", SessionID: sessionID, Content: msg})
}
