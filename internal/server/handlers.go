package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
	"github.com/ironsheep/contrast-tools-mcp/internal/contrast"
	"github.com/ironsheep/contrast-tools-mcp/internal/preview"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "analyze_color_pair").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies configured defaults for optional parameters
//  3. Validates enum arguments
//  4. Calls the appropriate contrast/preview function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Contrast Measurement
	case "calculate_contrast_ratio":
		return s.handleCalculateContrastRatio(args)
	case "analyze_color_pair":
		return s.handleAnalyzeColorPair(args)

	// Remediation
	case "suggest_accessible_color":
		return s.handleSuggestAccessibleColor(args)

	// Reference
	case "get_contrast_requirements":
		return s.handleGetContrastRequirements(args)

	// Visualization
	case "render_contrast_preview":
		return s.handleRenderContrastPreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments, treating absent arguments as an
// empty object so tools without required fields can be called bare.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Contrast Measurement Handlers ===

type colorPairArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

func (a colorPairArgs) validate() error {
	if a.Foreground == "" {
		return fmt.Errorf("foreground is required")
	}
	if a.Background == "" {
		return fmt.Errorf("background is required")
	}
	return nil
}

func (s *Server) handleCalculateContrastRatio(args json.RawMessage) (interface{}, error) {
	var a colorPairArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return contrast.CalculateContrastRatio(a.Foreground, a.Background)
}

type analyzeColorPairArgs struct {
	colorPairArgs
	ContentType string `json:"contentType"`
	Level       string `json:"level"`
}

func (s *Server) handleAnalyzeColorPair(args json.RawMessage) (interface{}, error) {
	var a analyzeColorPairArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.ContentType == "" {
		a.ContentType = s.cfg.Defaults.ContentType
	}
	if a.Level == "" {
		a.Level = s.cfg.Defaults.Level
	}

	contentType, err := contrast.ParseContentType(a.ContentType)
	if err != nil {
		return nil, err
	}
	level, err := contrast.ParseLevel(a.Level)
	if err != nil {
		return nil, err
	}
	return contrast.AnalyzeColorPair(a.Foreground, a.Background, contentType, level)
}

// === Remediation Handlers ===

type suggestAccessibleColorArgs struct {
	colorPairArgs
	TargetRatio *float64 `json:"targetRatio"`
	Preserve    string   `json:"preserve"`
}

// SuggestionsResult wraps the suggestion list so an empty result still
// serializes as an object with an empty array.
type SuggestionsResult struct {
	Suggestions []contrast.Suggestion `json:"suggestions"`
}

func (s *Server) handleSuggestAccessibleColor(args json.RawMessage) (interface{}, error) {
	var a suggestAccessibleColorArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.TargetRatio == nil {
		return nil, fmt.Errorf("targetRatio is required")
	}
	if a.Preserve == "" {
		a.Preserve = s.cfg.Defaults.Preserve
	}

	preserve, err := contrast.ParsePreserve(a.Preserve)
	if err != nil {
		return nil, err
	}
	suggestions, err := contrast.SuggestAccessibleColors(a.Foreground, a.Background, *a.TargetRatio, preserve)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		s.logger.Debug("no accessible color found", "foreground", a.Foreground, "background", a.Background, "target", *a.TargetRatio)
	}
	return &SuggestionsResult{Suggestions: suggestions}, nil
}

// === Reference Handlers ===

// RequirementsResult lists the WCAG thresholds in two shapes: a per content
// type summary and the full rule list with guideline references.
type RequirementsResult struct {
	Thresholds   map[contrast.ContentType]contrast.Thresholds `json:"thresholds"`
	Requirements []contrast.Requirement                       `json:"requirements"`
}

func (s *Server) handleGetContrastRequirements(args json.RawMessage) (interface{}, error) {
	var a struct{}
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return &RequirementsResult{
		Thresholds:   contrast.Requirements(),
		Requirements: contrast.AllRequirements(),
	}, nil
}

// === Visualization Handlers ===

type renderContrastPreviewArgs struct {
	colorPairArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleRenderContrastPreview(args json.RawMessage) (interface{}, error) {
	var a renderContrastPreviewArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = s.cfg.Preview.Width
	}
	if a.Height == 0 {
		a.Height = s.cfg.Preview.Height
	}

	fg, err := colors.ParseColor(a.Foreground)
	if err != nil {
		return nil, fmt.Errorf("invalid foreground color: %w", err)
	}
	bg, err := colors.ParseColor(a.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background color: %w", err)
	}
	return preview.Render(fg, bg, a.Width, a.Height)
}
