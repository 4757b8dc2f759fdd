package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// errorResult surfaces a recoverable failure as a structured payload so
// the orchestrator can pattern-match it instead of seeing a protocol error.
func errorResult(msg string) (*sdkmcp.CallToolResult, any, error) {
	return textResult(msg), map[string]any{"error": msg}, nil
}
