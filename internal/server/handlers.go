package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ironsheep/paint-bucket-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_flood_fill").
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
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if s.config.Debug {
		log.Printf("tool %s finished in %s (err=%v)", params.Name, time.Since(start), err)
	}
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_flood_fill":
		return s.handleImageFloodFill(args)
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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    *int   `json:"x"`
	Y    *int   `json:"y"`
}

// requirePoint dereferences the x and y arguments of a tool call. Both are
// pointers so that a missing coordinate is told apart from zero.
func requirePoint(x, y *int) (int, int, error) {
	if x == nil || y == nil {
		return 0, 0, errors.New("x and y are required")
	}
	return *x, *y, nil
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	x, y, err := requirePoint(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, x, y)
}

// === Fill Handlers ===

type imageFloodFillArgs struct {
	Path        string `json:"path"`
	X           *int   `json:"x"`
	Y           *int   `json:"y"`
	Color       string `json:"color"`
	Tolerance   int    `json:"tolerance"`
	Antialias   bool   `json:"antialias"`
	OutputPath  string `json:"output_path"`
	Format      string `json:"format"`
	IncludeMask bool   `json:"include_mask"`
}

func (s *Server) handleImageFloodFill(args json.RawMessage) (interface{}, error) {
	var a imageFloodFillArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	x, y, err := requirePoint(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	if a.Color == "" {
		return nil, errors.New("color is required")
	}
	if a.Tolerance > imaging.MaxTolerance {
		a.Tolerance = imaging.MaxTolerance
	}

	replacement, err := imaging.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := imaging.FillOptions{
		X:         x,
		Y:         y,
		Color:     replacement,
		Tolerance: a.Tolerance,
		Antialias: a.Antialias,
		Mask:      a.IncludeMask,
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.FillTimeout)
	defer cancel()

	res, err := imaging.FloodFillContext(ctx, img, opts)
	if err != nil {
		return nil, err
	}

	report := imaging.NewFillReport(res, opts)
	if a.OutputPath != "" {
		if err := report.SaveImage(res, a.OutputPath, a.Format); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		return report, nil
	}

	format := a.Format
	if format == "" {
		format = "png"
	}
	if err := report.AttachImage(res, format); err != nil {
		return nil, err
	}
	return report, nil
}
