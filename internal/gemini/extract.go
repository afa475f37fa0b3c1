package gemini

// CallMode distinguishes the two call kinds exposed by the server. The
// pipeline is identical for both; the mode only selects the message
// reported when the model returns no image.
type CallMode int

const (
	// ModeGenerate is a text-to-image call.
	ModeGenerate CallMode = iota
	// ModeEdit is an image-plus-instruction call.
	ModeEdit
)

const (
	errNoCandidates  = "No candidates returned from the API"
	errNoImage       = "No image was generated. The model may have refused or encountered an issue."
	errNoEditedImage = "No edited image was generated. The model may have refused or encountered an issue."
)

// Extract reduces an API response to a GenerationResult.
//
// Only the first candidate is consulted. Its parts are scanned in order
// and each text or inline-data part overwrites the previous one of its
// kind, so when the model returns several parts of the same kind the
// last one wins. A response whose first candidate carries text but no
// image is a failure: the contract of both call kinds is "produce an
// image", and any commentary the model supplied is kept alongside the
// error for context.
func Extract(resp *Response, model string, mode CallMode) GenerationResult {
	if resp == nil || len(resp.Candidates) == 0 {
		return GenerationResult{
			Success: false,
			Model:   model,
			Error:   errNoCandidates,
		}
	}

	candidate := resp.Candidates[0]
	result := GenerationResult{
		Success:      true,
		Model:        model,
		FinishReason: candidate.FinishReason,
	}

	for _, part := range candidate.Content.Parts {
		switch {
		case part.InlineData != nil:
			result.Image = &Image{
				MIMEType: part.InlineData.MIMEType,
				Data:     part.InlineData.Data,
			}
		case part.Text != "":
			result.Text = part.Text
		}
	}

	if result.Image == nil {
		result.Success = false
		result.FinishReason = ""
		if mode == ModeEdit {
			result.Error = errNoEditedImage
		} else {
			result.Error = errNoImage
		}
	}

	return result
}
