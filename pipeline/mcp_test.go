package pipeline

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var testMCPImpl = &mcp.Implementation{Name: "intake-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	pipe := New(Config{})
	srv := mcp.NewServer(testMCPImpl, nil)
	pipe.RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if result.IsError {
		t.Fatalf("CallTool(%s) tool error: %v", name, result.Content)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

// --- intake_formats ---

func TestMCP_Formats(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "intake_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Formats) != 8 {
		t.Errorf("expected 8 format hints, got %d: %v", len(resp.Formats), resp.Formats)
	}
}

// --- intake_process ---

func TestMCP_Process(t *testing.T) {
	session := mcpSession(t)

	sample, _ := Sample("pdf-invoice")
	text := mcpCallTool(t, session, "intake_process", map[string]any{
		"content":     sample.Content,
		"format_hint": sample.FormatHint,
		"file_name":   sample.FileName,
	})

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Classification.Format.Detected != "PDF" {
		t.Errorf("detected = %q", res.Classification.Format.Detected)
	}
	if res.Extraction.Document == nil || !res.Extraction.Document.InvoiceDetected {
		t.Errorf("extraction %+v", res.Extraction)
	}
}

func TestMCP_Process_MissingContent(t *testing.T) {
	session := mcpSession(t)

	// Empty content still classifies; only malformed arguments error.
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "intake_process",
		Arguments: map[string]any{"content": "", "format_hint": "txt"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if err := result.GetError(); err != nil {
		t.Fatalf("unexpected tool error: %v", err)
	}
}

// --- intake_history / intake_clear ---

func TestMCP_HistoryAndClear(t *testing.T) {
	session := mcpSession(t)

	mcpCallTool(t, session, "intake_samples", map[string]any{"key": "email-complaint"})
	mcpCallTool(t, session, "intake_samples", map[string]any{"key": "json-high-value"})

	text := mcpCallTool(t, session, "intake_history", map[string]any{})
	var resp struct {
		Entries []json.RawMessage `json:"entries"`
		Stats   struct {
			DocumentsProcessed int `json:"documents_processed"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Entries) != 2 || resp.Stats.DocumentsProcessed != 2 {
		t.Errorf("history %+v", resp)
	}

	mcpCallTool(t, session, "intake_clear", map[string]any{})

	text = mcpCallTool(t, session, "intake_history", map[string]any{})
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Entries) != 0 {
		t.Errorf("history not cleared: %d entries", len(resp.Entries))
	}
}

// --- intake_samples ---

func TestMCP_Samples_List(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "intake_samples", map[string]any{})
	var resp struct {
		Samples []SampleDocument `json:"samples"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Samples) != 12 {
		t.Errorf("expected 12 samples, got %d", len(resp.Samples))
	}
}

func TestMCP_Samples_UnknownKey(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "intake_samples",
		Arguments: map[string]any{"key": "no-such-sample"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for unknown sample key")
	}
}
