package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// colorProperty is the schema shared by every color argument.
func colorProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description + ". Accepts #rgb, #rrggbb, rgb(r, g, b) or rgba(r, g, b, a)",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Contrast Measurement
		{
			Name:        "calculate_contrast_ratio",
			Description: "Calculate the WCAG 2.1 contrast ratio between two colors. Returns a value from 1 (no contrast) to 21 (black on white), rounded to two decimals.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorProperty("Text or foreground color"),
					"background": colorProperty("Background color"),
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "analyze_color_pair",
			Description: "Check a foreground/background pair against WCAG 2.1 contrast requirements. Reports the ratio, AA pass/fail for normal text, large text and UI components, and whether the pair meets the requested content type and level.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorProperty("Text or foreground color"),
					"background": colorProperty("Background color"),
					"contentType": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"normal-text", "large-text", "ui-component"},
						"description": "What the colors are used for. Defaults to the server configuration (normal-text unless configured)",
					},
					"level": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"AA", "AAA"},
						"description": "WCAG conformance level. Defaults to the server configuration (AA unless configured)",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},

		// Remediation
		{
			Name:        "suggest_accessible_color",
			Description: "Suggest colors that reach a target contrast ratio by adjusting only the lightness of the foreground and/or background, keeping hue and saturation. Suggestions are ordered by closeness to the target; an empty list means no lightness change can reach it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorProperty("Text or foreground color"),
					"background": colorProperty("Background color"),
					"targetRatio": map[string]interface{}{
						"type":        "number",
						"description": "Contrast ratio to reach, e.g. 4.5 for AA normal text or 7 for AAA",
						"minimum":     1,
					},
					"preserve": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"foreground", "background", "both"},
						"description": "Which color must stay unchanged. 'both' tries adjusting each side in turn. Defaults to the server configuration (both unless configured)",
					},
				},
				"required": []string{"foreground", "background", "targetRatio"},
			},
		},

		// Reference
		{
			Name:        "get_contrast_requirements",
			Description: "List the WCAG 2.1 minimum contrast ratios for each content type and conformance level, with the success criterion each comes from.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Visualization
		{
			Name:        "render_contrast_preview",
			Description: "Render a PNG swatch showing the contrast ratio drawn in the foreground color on the background, returned as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": colorProperty("Text or foreground color"),
					"background": colorProperty("Background color"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch width in pixels (32-2048). Defaults to the server configuration",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch height in pixels (16-2048). Defaults to the server configuration",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
