package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// segmentProperties are the inputs shared by image_segment and
// image_segment_stats.
func segmentProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"granularity": map[string]interface{}{
			"type":        "number",
			"description": "Scale parameter k (>= 0). Larger values favour larger segments; 0 merges only identical-luminance neighbours. Typical values: 100-1000",
			"minimum":     0,
		},
		"min_size": map[string]interface{}{
			"type":        "integer",
			"description": "Optional minimum segment size in pixels. Smaller segments are merged into a neighbour after the main pass. Default 0 (off)",
			"minimum":     0,
			"default":     0,
		},
		"seed": map[string]interface{}{
			"type":        "integer",
			"description": "Seed for the pastel segment colours. Default 42",
			"default":     42,
		},
		"sigma": map[string]interface{}{
			"type":        "number",
			"description": "Optional Gaussian blur radius applied before segmenting (e.g. 0.8). Default 0 (none)",
			"minimum":     0,
			"default":     0,
		},
		"max_dimension": map[string]interface{}{
			"type":        "integer",
			"description": "Optional limit on the longer side; larger images are downscaled first. Default 0 (no limit)",
			"minimum":     0,
			"default":     0,
		},
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Optional rectangle to segment instead of the whole image; (x1,y1) inclusive, (x2,y2) exclusive",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x1", "y1", "x2", "y2"},
		},
		"largest": map[string]interface{}{
			"type":        "integer",
			"description": "How many of the largest segments to list in the statistics. Default 5",
			"default":     5,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	segmentProps := segmentProperties()
	segmentProps["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file to write the segment image to (.png, .jpg, .bmp, .webp or .tga). When omitted the image is returned as base64-encoded PNG",
	}
	segmentProps["quality"] = map[string]interface{}{
		"type":        "integer",
		"description": "JPEG quality 1-100 when output_path ends in .jpg. Default 90",
		"default":     90,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, pixel count and format. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
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
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the color at a pixel as hex, RGB, HSL and the luminance value segmentation uses for edge weights.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = topmost)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Segmentation
		{
			Name:        "image_segment",
			Description: "Partition an image into regions of similar luminance (Felzenszwalb-Huttenlocher graph segmentation) and paint each region a pastel color. Returns segment statistics plus the painted image or the path it was written to.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": segmentProps,
				"required":   []string{"path", "granularity"},
			},
		},
		{
			Name:        "image_segment_stats",
			Description: "Segment an image like image_segment but return only the statistics: segment count, size distribution and the largest segments.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": segmentProperties(),
				"required":   []string{"path", "granularity"},
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
