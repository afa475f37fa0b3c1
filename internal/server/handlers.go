package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gemini-image-mcp/internal/gemini"
	"github.com/ironsheep/gemini-image-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "generate_image").
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
// Protocol-level problems (malformed params, unknown tool) return a
// JSON-RPC error response. Everything else, including upstream API
// failures, comes back as a regular result whose payload carries
// success:false and a message, so a failed generation never looks like
// a broken server to the client.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	callID := uuid.NewString()
	start := time.Now()

	result, err := s.executeTool(params.Name, params.Arguments, callID)

	s.log.WithFields(logrus.Fields{
		"tool":     params.Name,
		"call_id":  callID,
		"duration": time.Since(start),
		"failed":   err != nil,
	}).Info("tool call handled")

	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	// Rendered (markdown) results go out as-is; everything else is
	// serialized to JSON.
	text, ok := result.(string)
	if !ok {
		text = mustMarshalJSON(result)
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage, callID string) (interface{}, error) {
	switch name {
	case "generate_image":
		return s.handleGenerateImage(args, callID)
	case "edit_image":
		return s.handleEditImage(args, callID)
	case "list_models":
		return s.handleListModels(args)
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

// toolResult is the payload returned by the generation tools. When the
// image was saved to disk SavedTo is set and the base64 payload is
// omitted; otherwise ImageBase64 carries the image inline.
type toolResult struct {
	Success      bool   `json:"success"`
	Model        string `json:"model,omitempty"`
	Error        string `json:"error,omitempty"`
	Text         string `json:"text,omitempty"`
	ImageBase64  string `json:"image_base64,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	SavedTo      string `json:"saved_to,omitempty"`
	SizeBytes    int    `json:"size_bytes,omitempty"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// === Generation Tool Handlers ===

type generateImageArgs struct {
	Prompt     string `json:"prompt"`
	Model      string `json:"model"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleGenerateImage(args json.RawMessage, callID string) (interface{}, error) {
	var a generateImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.runGeneration(gemini.ModeGenerate, a.Prompt, a.Model, nil, a.OutputPath, callID), nil
}

type editImageArgs struct {
	Prompt     string `json:"prompt"`
	ImagePath  string `json:"image_path"`
	Model      string `json:"model"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleEditImage(args json.RawMessage, callID string) (interface{}, error) {
	var a editImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	data, mimeType, err := imaging.ReadImageFile(a.ImagePath)
	if err != nil {
		return &toolResult{
			Success: false,
			Model:   modelOrDefault(a.Model),
			Error:   gemini.ClassifyError(err),
		}, nil
	}

	input := &gemini.Blob{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}
	return s.runGeneration(gemini.ModeEdit, a.Prompt, a.Model, input, a.OutputPath, callID), nil
}

// runGeneration is the shared pipeline behind generate_image and
// edit_image: build the request, make the single API call, extract the
// result, then either save the image or return it inline. The two call
// kinds differ only in the optional input image and in which "no image"
// message the extractor picks.
func (s *Server) runGeneration(mode gemini.CallMode, prompt, model string, input *gemini.Blob, outputPath, callID string) *toolResult {
	model = modelOrDefault(model)

	if s.client == nil {
		return &toolResult{Success: false, Model: model, Error: s.clientErr}
	}

	req := gemini.NewRequest(prompt, input)

	resp, err := s.client.GenerateContent(model, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"call_id": callID,
			"model":   model,
		}).Warnf("generateContent failed: %v", err)
		return &toolResult{Success: false, Model: model, Error: gemini.ClassifyError(err)}
	}

	result := gemini.Extract(resp, model, mode)
	if !result.Success {
		return &toolResult{
			Success: false,
			Model:   result.Model,
			Error:   result.Error,
			Text:    result.Text,
		}
	}

	out := &toolResult{
		Success:      true,
		Model:        result.Model,
		Text:         result.Text,
		MimeType:     result.Image.MIMEType,
		FinishReason: result.FinishReason,
	}

	if outputPath == "" {
		out.ImageBase64 = result.Image.Data
		return out
	}

	saved, err := imaging.SaveBase64(outputPath, result.Image.Data)
	if err != nil {
		return &toolResult{
			Success: false,
			Model:   result.Model,
			Text:    result.Text,
			Error:   gemini.ClassifyError(err),
		}
	}

	out.SavedTo = saved.Path
	out.SizeBytes = saved.SizeBytes
	out.Width = saved.Width
	out.Height = saved.Height
	return out
}

func modelOrDefault(model string) string {
	if model == "" {
		return gemini.DefaultModel
	}
	return model
}

// === Model Listing Handler ===

type listModelsArgs struct {
	Format string `json:"format"`
}

// listModelsResult is the structured form of the model catalog.
type listModelsResult struct {
	Models []gemini.ModelInfo `json:"models"`
}

func (s *Server) handleListModels(args json.RawMessage) (interface{}, error) {
	var a listModelsArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}

	switch a.Format {
	case "", "markdown":
		return gemini.RenderCatalog(), nil
	case "json":
		return &listModelsResult{Models: gemini.Catalog()}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", a.Format)
	}
}
