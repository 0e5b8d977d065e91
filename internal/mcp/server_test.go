package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/limitless-infotech/auralis/internal/auralis"
	"github.com/limitless-infotech/auralis/internal/db"
	"github.com/limitless-infotech/auralis/internal/enterprise"
	"github.com/limitless-infotech/auralis/internal/knowledge"
	"github.com/limitless-infotech/auralis/internal/store"
)

func newTestMCPServer(t *testing.T) *Server {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	st := store.NewStore(database)
	ks := knowledge.NewStore(database, nil, nil)
	if err := ks.Seed(context.Background()); err != nil {
		t.Fatalf("seed knowledge: %v", err)
	}
	pipeline := auralis.NewPipeline(
		auralis.NewClassifier(),
		auralis.NewResponder(nil, "", ks, 0, nil),
		auralis.NewRegistry(),
		st,
		nil,
	)
	return NewServer(pipeline, ks, enterprise.NewInterpreter(pipeline, st, nil))
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestHandleAskAuralis(t *testing.T) {
	srv := newTestMCPServer(t)
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"message": "how much does a website cost",
		"page":    "/pricing",
	}

	result, err := srv.handleAskAuralis(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	text := resultText(result)
	if !strings.Contains(text, "USD 2,500") {
		t.Errorf("result missing pricing copy:\n%s", text)
	}
	if !strings.Contains(text, "intent: pricing (0.8)") {
		t.Errorf("result missing intent line:\n%s", text)
	}
	if !strings.Contains(text, "session: session-") {
		t.Errorf("result missing generated session:\n%s", text)
	}
}

func TestHandleAskAuralisMissingMessage(t *testing.T) {
	srv := newTestMCPServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{}

	result, err := srv.handleAskAuralis(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error for missing message")
	}
}

func TestHandleClassifyIntent(t *testing.T) {
	srv := newTestMCPServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"message": "I need a quote for my budget",
	}

	result, err := srv.handleClassifyIntent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}

	var det auralis.Detection
	if err := json.Unmarshal([]byte(resultText(result)), &det); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if det.Intent != "pricing" || det.Confidence != 0.8 {
		t.Errorf("detection = %+v", det)
	}
}

func TestHandleSearchKnowledge(t *testing.T) {
	srv := newTestMCPServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"query": "who founded the company",
	}

	result, err := srv.handleSearchKnowledge(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	if !strings.Contains(resultText(result), "Faisal Khan") {
		t.Errorf("result = %s", resultText(result))
	}
}

func TestHandlePortalCommand(t *testing.T) {
	srv := newTestMCPServer(t)
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"command": "show pending qa tasks",
	}

	result, err := srv.handlePortalCommand(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(result), "no pending QA tasks") {
		t.Errorf("result = %s", resultText(result))
	}
}
