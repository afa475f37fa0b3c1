package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "generate_image",
			Description: "Generate an image from a text prompt using Gemini. Returns the image as base64, or saves it to a file when output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "Text description of the image to generate",
					},
					"model": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"gemini-2.5-flash-image", "gemini-3-pro-image-preview"},
						"description": "Model to use. Defaults to gemini-2.5-flash-image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to save the generated image to. Parent directories are created as needed",
					},
				},
				"required": []string{"prompt"},
			},
		},
		{
			Name:        "edit_image",
			Description: "Edit an existing image with a text instruction using Gemini. Reads the input image from disk and returns the edited image as base64, or saves it to a file when output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "Instruction describing the edit to apply",
					},
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Path to the input image (png, jpg, jpeg, webp, or gif)",
					},
					"model": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"gemini-2.5-flash-image", "gemini-3-pro-image-preview"},
						"description": "Model to use. Defaults to gemini-2.5-flash-image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional file path to save the edited image to. Parent directories are created as needed",
					},
				},
				"required": []string{"prompt", "image_path"},
			},
		},
		{
			Name:        "list_models",
			Description: "List the supported image generation models with their capabilities and recommended uses.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"markdown", "json"},
						"description": "Output format. Defaults to markdown",
					},
				},
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
