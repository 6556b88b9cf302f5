// Package server implements the MCP (Model Context Protocol) server for
// graph-based image segmentation.
//
// This package provides a JSON-RPC 2.0 server that exposes segmentation
// through the MCP protocol, so MCP-compatible clients can partition images
// into regions and inspect the result.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color and segmentation luminance at a pixel
//
// Segmentation:
//   - image_segment: Segment, paint, and return or save the result
//   - image_segment_stats: Segment and return statistics only
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path, so
// segmenting one file at several granularities decodes it once. The cache
// persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogf(log.Printf))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
