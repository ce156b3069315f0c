// Package server implements the MCP (Model Context Protocol) server for color
// contrast tools.
//
// This package provides a JSON-RPC 2.0 server that exposes WCAG 2.1 contrast
// checking and remediation through the MCP protocol, so MCP-compatible
// clients can verify color pairs while generating or reviewing UI code.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Contrast Measurement:
//   - calculate_contrast_ratio: Ratio between two colors (1 to 21)
//   - analyze_color_pair: Pass/fail against WCAG thresholds
//
// Remediation:
//   - suggest_accessible_color: Lightness-only adjustments reaching a target ratio
//
// Reference:
//   - get_contrast_requirements: The WCAG threshold table
//
// Visualization:
//   - render_contrast_preview: PNG swatch of the pair with its ratio
//
// Colors are accepted as #rgb, #rrggbb, rgb(r, g, b) or rgba(r, g, b, a).
// Alpha is validated but ignored.
//
// # Defaults
//
// Optional arguments (contentType, level, preserve, width, height) fall back
// to the values in the server's config.Config, which itself defaults to
// normal-text, AA, both and a 240x120 swatch.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses with:
//   - code: -32601 (unknown method), -32602 (malformed tools/call params)
//     or -32000 (tool execution failure)
//   - message: Human-readable error description
//   - data: The Go error string, which names the offending input
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
