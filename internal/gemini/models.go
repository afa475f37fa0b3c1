package gemini

import (
	"fmt"
	"strings"
)

// Model identifiers accepted by the generate and edit tools. Callers
// that don't specify a model get ModelFlash.
const (
	ModelFlash = "gemini-2.5-flash-image"
	ModelPro   = "gemini-3-pro-image-preview"

	DefaultModel = ModelFlash
)

// ModelInfo is static metadata about one supported model.
type ModelInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	BestFor      string   `json:"best_for"`
}

// Catalog returns metadata for the supported models, flash variant first.
func Catalog() []ModelInfo {
	return []ModelInfo{
		{
			ID:          ModelFlash,
			Name:        "Gemini 2.5 Flash Image",
			Description: "Fast image generation and editing model, tuned for low latency.",
			Capabilities: []string{
				"text-to-image generation",
				"image editing with text instructions",
				"interleaved text and image output",
			},
			BestFor: "Quick iterations, drafts, and everyday generation tasks.",
		},
		{
			ID:          ModelPro,
			Name:        "Gemini 3 Pro Image (Preview)",
			Description: "Higher-fidelity image generation model with stronger prompt adherence.",
			Capabilities: []string{
				"text-to-image generation",
				"image editing with text instructions",
				"complex scene composition",
				"text rendering inside images",
			},
			BestFor: "Final renders and prompts that need precise detail.",
		},
	}
}

// RenderCatalog formats the model catalog as human-readable markdown.
func RenderCatalog() string {
	var b strings.Builder
	b.WriteString("# Available Models\n")
	for _, m := range Catalog() {
		fmt.Fprintf(&b, "\n## %s (`%s`)\n\n%s\n\nCapabilities:\n", m.Name, m.ID, m.Description)
		for _, c := range m.Capabilities {
			fmt.Fprintf(&b, "- %s\n", c)
		}
		fmt.Fprintf(&b, "\nBest for: %s\n", m.BestFor)
	}
	return b.String()
}
