package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-segment-mcp/internal/imaging"
	"github.com/ironsheep/image-segment-mcp/internal/palette"
	"github.com/ironsheep/image-segment-mcp/internal/pipeline"
	"github.com/ironsheep/image-segment-mcp/internal/render"
	"github.com/ironsheep/image-segment-mcp/internal/segment"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_segment").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errMissingGranularity is returned when a segmentation call omits granularity.
var errMissingGranularity = errors.New("granularity is required")

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
		s.debugf("tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
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
//  4. Calls the appropriate imaging or pipeline function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Segmentation
	case "image_segment":
		return s.handleImageSegment(args)
	case "image_segment_stats":
		return s.handleImageSegmentStats(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
// An empty data string is omitted.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	e := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		e.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
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

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Segmentation Handlers ===

type imageSegmentArgs struct {
	Path         string          `json:"path"`
	Granularity  *float64        `json:"granularity"`
	MinSize      int             `json:"min_size"`
	Seed         *int64          `json:"seed"`
	Sigma        float64         `json:"sigma"`
	MaxDimension int             `json:"max_dimension"`
	Region       *imaging.Region `json:"region"`
	Largest      int             `json:"largest"`
	OutputPath   string          `json:"output_path"`
	Quality      int             `json:"quality"`
}

// params converts the arguments into pipeline parameters, applying defaults.
func (a imageSegmentArgs) params(logf segment.LogFunc) (pipeline.Params, error) {
	if a.Granularity == nil {
		return pipeline.Params{}, errMissingGranularity
	}
	p := pipeline.Params{
		Granularity: *a.Granularity,
		MinSize:     a.MinSize,
		Seed:        palette.DefaultSeed,
		Prepare: imaging.PrepareOptions{
			Region:       a.Region,
			MaxDimension: a.MaxDimension,
			Sigma:        a.Sigma,
		},
		Largest: a.Largest,
		Logf:    logf,
	}
	if a.Seed != nil {
		p.Seed = *a.Seed
	}
	return p, nil
}

// SegmentStatsResult is returned by image_segment_stats.
type SegmentStatsResult struct {
	// Width and Height are the dimensions actually segmented, after any
	// crop or downscale.
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Edges       int          `json:"edges"`
	Merges      int          `json:"merges"`
	SmallMerges int          `json:"small_merges"`
	Stats       render.Stats `json:"stats"`
}

// SegmentResult is returned by image_segment. Exactly one of OutputPath and
// ImageBase64 is set.
type SegmentResult struct {
	SegmentStatsResult
	OutputPath  string `json:"output_path,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
}

func (s *Server) runSegment(args json.RawMessage) (imageSegmentArgs, *pipeline.Output, error) {
	var a imageSegmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return a, nil, err
	}
	p, err := a.params(s.logf)
	if err != nil {
		return a, nil, err
	}
	out, err := pipeline.RunFile(s.cache, a.Path, p)
	if err != nil {
		return a, nil, err
	}
	return a, out, nil
}

func statsResult(out *pipeline.Output) SegmentStatsResult {
	return SegmentStatsResult{
		Width:       out.Grid.Cols(),
		Height:      out.Grid.Rows(),
		Edges:       out.Result.Edges,
		Merges:      out.Result.Merges,
		SmallMerges: out.Result.SmallMerges,
		Stats:       out.Stats,
	}
}

func (s *Server) handleImageSegment(args json.RawMessage) (interface{}, error) {
	a, out, err := s.runSegment(args)
	if err != nil {
		return nil, err
	}

	result := &SegmentResult{SegmentStatsResult: statsResult(out)}
	if a.OutputPath != "" {
		if err := imaging.Save(out.Image(), a.OutputPath, a.Quality); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	encoded, err := imaging.EncodePNGBase64(out.Image())
	if err != nil {
		return nil, err
	}
	result.ImageBase64 = encoded
	return result, nil
}

func (s *Server) handleImageSegmentStats(args json.RawMessage) (interface{}, error) {
	_, out, err := s.runSegment(args)
	if err != nil {
		return nil, err
	}
	result := statsResult(out)
	return &result, nil
}
