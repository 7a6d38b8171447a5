// Package server implements the MCP (Model Context Protocol) server for the
// paint bucket tool.
//
// This package provides a JSON-RPC 2.0 server that exposes flood fill and a
// few supporting image queries through the MCP protocol, so MCP clients can
// inspect an image, pick a seed and fill a region.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - image_sample_color: Get color at pixel
//   - image_flood_fill: Paint bucket fill from a seed pixel
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images keyed by path.
// A fill that writes to output_path evicts that path, so a follow-up fill
// on the output sees the new pixels.
//
// # Configuration
//
// Settings come from the environment (see ConfigFromEnv):
//   - PAINTBUCKET_LOG_LEVEL=debug: log each request and tool call
//   - PAINTBUCKET_FILL_TIMEOUT: how long a fill may run, e.g. "10s"
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
