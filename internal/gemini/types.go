package gemini

// Blob is a base64-encoded binary payload tagged with its MIME type.
// It appears on the wire as the "inlineData" variant of a content part.
type Blob struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is one unit of a multimodal message. Exactly one of Text or
// InlineData is populated; the upstream API distinguishes the two by
// field presence.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Content is an ordered sequence of parts, optionally tagged with a
// role ("user" or "model"). Requests leave Role empty, which the API
// treats as "user".
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig declares which output modalities the caller wants.
type GenerationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

// Request is the body of a generateContent call.
type Request struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Candidate is one alternative completion returned by the API.
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata carries token accounting for a completed call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// Response is the body of a successful generateContent call. An empty
// Candidates slice is legitimate (the model declined); it is not a
// transport error.
type Response struct {
	Candidates    []Candidate    `json:"candidates"`
	UsageMetadata *UsageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
}

// Image is a generated image extracted from a response.
type Image struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

// GenerationResult is the outcome of one generate or edit call.
// Success is true if and only if Image is non-nil; a text-only
// response is reported as a failure with an explanatory Error.
type GenerationResult struct {
	Success      bool   `json:"success"`
	Model        string `json:"model"`
	Text         string `json:"text,omitempty"`
	Image        *Image `json:"image,omitempty"`
	Error        string `json:"error,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}
