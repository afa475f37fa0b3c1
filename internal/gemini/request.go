package gemini

// NewRequest builds a generateContent request body from a prompt and an
// optional input image. The image, when present, follows the text part.
// Both text and image output channels are always requested; the model
// decides what it actually returns, and the extractor sorts that out.
func NewRequest(prompt string, image *Blob) Request {
	parts := []Part{{Text: prompt}}
	if image != nil {
		parts = append(parts, Part{InlineData: image})
	}

	return Request{
		Contents: []Content{
			{Parts: parts},
		},
		GenerationConfig: GenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}
}
