package server

import "github.com/ironsheep/paint-bucket-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Later calls on the same path reuse the decoded image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate. Useful for choosing a fill seed and tolerance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Fill
		{
			Name: "image_flood_fill",
			Description: "Paint bucket fill. Replaces the region of similar color that is 4-connected to the seed pixel. " +
				"The result is written to output_path, or returned as a base64 image when output_path is omitted. " +
				"The source file is never modified.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Seed X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Seed Y coordinate (0-based, from top)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Replacement color as #RGB, #RRGGBB or #RRGGBBAA",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Largest sum of per-channel differences (R+G+B+A) from the seed color still filled. 0 fills exact matches only.",
						"minimum":     0,
						"maximum":     imaging.MaxTolerance,
						"default":     0,
					},
					"antialias": map[string]interface{}{
						"type":        "boolean",
						"description": "Fade the fill out toward the tolerance limit instead of replacing pixels outright",
						"default":     false,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional absolute path to write the filled image to",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Output format: png, jpeg, gif, tiff, bmp or qoi. Defaults to the output_path extension, or png.",
						"enum":        []string{"png", "jpeg", "gif", "tiff", "bmp", "qoi"},
					},
					"include_mask": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return a base64 PNG mask that is white where pixels changed",
						"default":     false,
					},
				},
				"required": []string{"path", "x", "y", "color"},
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
