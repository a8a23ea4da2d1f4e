package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers the intake tools on an MCP server.
func (p *Pipeline) RegisterMCP(srv *mcp.Server) {
	p.registerProcessTool(srv)
	p.registerHistoryTool(srv)
	p.registerClearTool(srv)
	p.registerFormatsTool(srv)
	p.registerSamplesTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// registerTool wires an endpoint as an MCP tool: decode arguments, run,
// marshal the response as a JSON text block. Endpoint errors become tool
// errors, not protocol errors.
func registerTool(srv *mcp.Server, tool *mcp.Tool, endpoint func(ctx context.Context, args json.RawMessage) (any, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp, err := endpoint(ctx, req.Params.Arguments)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(errors.New(err.Error()))
			return &res, nil
		}
		data, err := json.Marshal(resp)
		if err != nil {
			var res mcp.CallToolResult
			res.SetError(fmt.Errorf("marshal: %w", err))
			return &res, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

// --- process ---

type processReq struct {
	Content    string `json:"content"`
	FormatHint string `json:"format_hint"`
	FileName   string `json:"file_name"`
}

func (p *Pipeline) registerProcessTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "intake_process",
		Description: "Classify a document, extract its typed contents, and derive follow-up actions.",
		InputSchema: inputSchema(map[string]any{
			"content":     map[string]any{"type": "string", "description": "Raw document text"},
			"format_hint": map[string]any{"type": "string", "description": "Declared format: email/eml, structured-data/json, document-text/pdf, plain-text/txt"},
			"file_name":   map[string]any{"type": "string", "description": "Original file name, recorded in the history"},
		}, []string{"content"}),
	}

	registerTool(srv, tool, func(ctx context.Context, args json.RawMessage) (any, error) {
		var r processReq
		if err := json.Unmarshal(args, &r); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
		return p.Process(ctx, Submission{
			Content:    r.Content,
			FormatHint: r.FormatHint,
			FileName:   r.FileName,
		})
	})
}

// --- history ---

func (p *Pipeline) registerHistoryTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "intake_history",
		Description: "List processed documents, most recent first, with session counters.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, _ json.RawMessage) (any, error) {
		return map[string]any{
			"entries": p.History(),
			"stats":   p.Stats(),
		}, nil
	})
}

// --- clear ---

func (p *Pipeline) registerClearTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "intake_clear",
		Description: "Clear the processing history and reset the session counters.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, _ json.RawMessage) (any, error) {
		p.ClearHistory()
		return map[string]any{"cleared": true}, nil
	})
}

// --- formats ---

func (p *Pipeline) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "intake_formats",
		Description: "List all accepted document format hints.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	registerTool(srv, tool, func(_ context.Context, _ json.RawMessage) (any, error) {
		return map[string]any{"formats": p.Formats()}, nil
	})
}

// --- samples ---

type sampleReq struct {
	Key string `json:"key"`
}

func (p *Pipeline) registerSamplesTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "intake_samples",
		Description: "List the canned sample documents, or process one by key.",
		InputSchema: inputSchema(map[string]any{
			"key": map[string]any{"type": "string", "description": "Sample key to process; omit to list samples"},
		}, nil),
	}

	registerTool(srv, tool, func(ctx context.Context, args json.RawMessage) (any, error) {
		var r sampleReq
		if len(args) > 0 {
			if err := json.Unmarshal(args, &r); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}
		}
		if r.Key == "" {
			return map[string]any{"samples": Samples()}, nil
		}
		sample, ok := Sample(r.Key)
		if !ok {
			return nil, fmt.Errorf("unknown sample %q", r.Key)
		}
		return p.Process(ctx, Submission{
			Content:    sample.Content,
			FormatHint: sample.FormatHint,
			FileName:   sample.FileName,
		})
	})
}
