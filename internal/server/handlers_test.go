package server

import (
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writePNG(t, img)
}

// createHalvesImageFile creates a 20x10 image, black on the left half and
// white on the right.
func createHalvesImageFile(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 10 {
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return writePNG(t, img)
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	return tmpFile.Name()
}

// callTool sends a tools/call request through handleRequest.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	return resp
}

// decodeContent unmarshals the JSON text of a successful tool response into v.
func decodeContent(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %#v", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	if err := json.Unmarshal([]byte(content[0]["text"].(string)), v); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Pixels int    `json:"pixels"`
		Format string `json:"format"`
	}
	decodeContent(t, callTool(t, s, "image_load", map[string]interface{}{"path": imgPath}), &info)

	if info.Width != 100 || info.Height != 80 || info.Pixels != 8000 {
		t.Errorf("got %dx%d (%d pixels), want 100x80 (8000)", info.Width, info.Height, info.Pixels)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	decodeContent(t, callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath}), &dims)

	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("got %dx%d, want 200x150", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_ImageSampleColor(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.RGBA{255, 0, 0, 255})

	var c struct {
		Hex       string  `json:"hex"`
		Luminance float64 `json:"luminance"`
	}
	decodeContent(t, callTool(t, s, "image_sample_color", map[string]interface{}{"path": imgPath, "x": 5, "y": 5}), &c)

	if c.Hex != "#FF0000" {
		t.Errorf("Hex: got %s, want #FF0000", c.Hex)
	}
	if c.Luminance != 76.5 {
		t.Errorf("Luminance: got %v, want 76.5", c.Luminance)
	}

	resp := callTool(t, s, "image_sample_color", map[string]interface{}{"path": imgPath, "x": 10, "y": 0})
	if resp.Error == nil {
		t.Error("out-of-bounds sample should fail")
	}
}

func TestHandleToolsCall_ImageSegment_Base64(t *testing.T) {
	s := New()
	imgPath := createHalvesImageFile(t)

	var result SegmentResult
	decodeContent(t, callTool(t, s, "image_segment", map[string]interface{}{
		"path":        imgPath,
		"granularity": 100,
	}), &result)

	if result.Width != 20 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", result.Width, result.Height)
	}
	if result.Stats.Segments != 2 {
		t.Errorf("Segments: got %d, want 2", result.Stats.Segments)
	}
	if result.Stats.MinSize != 100 || result.Stats.MaxSize != 100 {
		t.Errorf("sizes: got %d-%d, want 100-100", result.Stats.MinSize, result.Stats.MaxSize)
	}
	if result.OutputPath != "" {
		t.Errorf("OutputPath should be empty, got %s", result.OutputPath)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("painted image bounds: got %v", img.Bounds())
	}
	if img.At(0, 0) == img.At(19, 0) {
		t.Error("the two halves should be painted differently")
	}
}

func TestHandleToolsCall_ImageSegment_OutputPath(t *testing.T) {
	s := New()
	imgPath := createHalvesImageFile(t)
	outPath := filepath.Join(t.TempDir(), "segments.webp")

	var result SegmentResult
	decodeContent(t, callTool(t, s, "image_segment", map[string]interface{}{
		"path":        imgPath,
		"granularity": 1e6,
		"output_path": outPath,
	}), &result)

	if result.Stats.Segments != 1 {
		t.Errorf("Segments: got %d, want 1", result.Stats.Segments)
	}
	if result.OutputPath != outPath {
		t.Errorf("OutputPath: got %s, want %s", result.OutputPath, outPath)
	}
	if result.ImageBase64 != "" {
		t.Error("ImageBase64 should be empty when output_path is set")
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestHandleToolsCall_ImageSegment_Region(t *testing.T) {
	s := New()
	imgPath := createHalvesImageFile(t)

	var result SegmentStatsResult
	decodeContent(t, callTool(t, s, "image_segment_stats", map[string]interface{}{
		"path":        imgPath,
		"granularity": 100,
		"region":      map[string]int{"x1": 0, "y1": 0, "x2": 10, "y2": 10},
	}), &result)

	if result.Width != 10 || result.Height != 10 {
		t.Errorf("dimensions: got %dx%d, want 10x10", result.Width, result.Height)
	}
	if result.Stats.Segments != 1 {
		t.Errorf("Segments: got %d, want 1", result.Stats.Segments)
	}
}

func TestHandleToolsCall_ImageSegmentStats(t *testing.T) {
	s := New()
	imgPath := createHalvesImageFile(t)

	resp := callTool(t, s, "image_segment_stats", map[string]interface{}{
		"path":        imgPath,
		"granularity": 100,
		"seed":        7,
		"largest":     1,
	})

	var raw map[string]interface{}
	decodeContent(t, resp, &raw)
	if _, ok := raw["image_base64"]; ok {
		t.Error("image_segment_stats should not return an image")
	}

	var result SegmentStatsResult
	decodeContent(t, resp, &result)
	if result.Edges != 4*200-3*10-3*20+2 {
		t.Errorf("Edges: got %d, want %d", result.Edges, 4*200-3*10-3*20+2)
	}
	if result.Stats.Segments != 2 || len(result.Stats.Largest) != 1 {
		t.Errorf("stats: got %+v", result.Stats)
	}
	if result.Stats.Largest[0].Color == "" {
		t.Error("largest segment should carry its colour")
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.Black)

	tests := []struct {
		name     string
		tool     string
		args     map[string]interface{}
		wantData string
	}{
		{"unknown tool", "image_ocr_full", map[string]interface{}{"path": imgPath}, "unknown tool"},
		{"missing file", "image_load", map[string]interface{}{"path": "/nonexistent/image.png"}, "failed to open image"},
		{"missing granularity", "image_segment", map[string]interface{}{"path": imgPath}, "granularity is required"},
		{"negative granularity", "image_segment_stats", map[string]interface{}{"path": imgPath, "granularity": -1}, "granularity"},
		{"negative min size", "image_segment", map[string]interface{}{"path": imgPath, "granularity": 1, "min_size": -2}, "min"},
		{"bad region", "image_segment", map[string]interface{}{
			"path": imgPath, "granularity": 1,
			"region": map[string]int{"x1": 0, "y1": 0, "x2": 50, "y2": 50},
		}, "outside image bounds"},
		{"bad output extension", "image_segment", map[string]interface{}{
			"path": imgPath, "granularity": 1, "output_path": filepath.Join(t.TempDir(), "out.txt"),
		}, "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := callTool(t, s, tt.tool, tt.args)
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != -32000 {
				t.Errorf("Error.Code: got %d, want -32000", resp.Error.Code)
			}
			data, _ := resp.Error.Data.(string)
			if !strings.Contains(data, tt.wantData) {
				t.Errorf("Error.Data %q should contain %q", data, tt.wantData)
			}
		})
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp == nil || resp.Error == nil {
		t.Fatal("expected error response")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error.Code: got %d, want -32602", resp.Error.Code)
	}
}
