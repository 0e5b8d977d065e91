package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/limitless-infotech/auralis/internal/auralis"
)

// handleAskAuralis runs one full conversation turn.
func (s *Server) handleAskAuralis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	sessionID := request.GetString("session_id", "")
	if sessionID == "" {
		sessionID = "session-" + uuid.New().String()
	}

	turn, err := s.pipeline.Process(ctx, auralis.Request{
		SessionID: sessionID,
		Message:   message,
		Page:      request.GetString("page", ""),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString(turn.Reply)
	fmt.Fprintf(&b, "\n\n---\nsession: %s\nintent: %s (%.1f)", turn.SessionID, turn.Detection.Intent, turn.Detection.Confidence)
	if len(turn.Suggestions) > 0 {
		fmt.Fprintf(&b, "\nsuggestions: %s", strings.Join(turn.Suggestions, "; "))
	}
	if turn.Escalation != nil {
		fmt.Fprintf(&b, "\nescalation: %s (%s)", turn.Escalation.Reason, turn.Escalation.Priority)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleClassifyIntent classifies without generating a reply.
func (s *Server) handleClassifyIntent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	det := s.pipeline.Classifier().Classify(message)
	out, err := json.MarshalIndent(det, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding detection: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// handleSearchKnowledge queries the knowledge base.
func (s *Server) handleSearchKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if s.knowledge == nil {
		return mcp.NewToolResultError("knowledge base not configured"), nil
	}

	snippets := s.knowledge.Lookup(ctx, query)
	if len(snippets) == 0 {
		return mcp.NewToolResultText("No knowledge base entries matched the query."), nil
	}
	return mcp.NewToolResultText(strings.Join(snippets, "\n\n")), nil
}

// handlePortalCommand executes an enterprise portal command.
func (s *Server) handlePortalCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command, err := request.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: command"), nil
	}
	if s.interp == nil {
		return mcp.NewToolResultError("enterprise interpreter not configured"), nil
	}

	return mcp.NewToolResultText(s.interp.ProcessCommand(ctx, command)), nil
}
