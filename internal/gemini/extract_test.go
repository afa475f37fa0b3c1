package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_NoCandidates(t *testing.T) {
	for _, resp := range []*Response{nil, {}, {Candidates: []Candidate{}}} {
		result := Extract(resp, ModelFlash, ModeGenerate)

		assert.False(t, result.Success)
		assert.Equal(t, "No candidates returned from the API", result.Error)
		assert.Equal(t, ModelFlash, result.Model)
		assert.Empty(t, result.Text)
		assert.Nil(t, result.Image)
	}
}

func TestExtract_TextOnlyIsFailure(t *testing.T) {
	resp := &Response{
		Candidates: []Candidate{{
			Content: Content{
				Role: "model",
				Parts: []Part{
					{Text: "I can't create that image."},
				},
			},
			FinishReason: "STOP",
		}},
	}

	tests := []struct {
		name    string
		mode    CallMode
		wantErr string
	}{
		{"generate", ModeGenerate, "No image was generated. The model may have refused or encountered an issue."},
		{"edit", ModeEdit, "No edited image was generated. The model may have refused or encountered an issue."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Extract(resp, ModelFlash, tt.mode)

			assert.False(t, result.Success)
			assert.Equal(t, tt.wantErr, result.Error)
			assert.Equal(t, "I can't create that image.", result.Text)
			assert.Nil(t, result.Image)
		})
	}
}

func TestExtract_TextAndImage(t *testing.T) {
	resp := &Response{
		Candidates: []Candidate{{
			Content: Content{
				Role: "model",
				Parts: []Part{
					{Text: "Here is your balloon"},
					{InlineData: &Blob{MIMEType: "image/png", Data: "cGl4ZWxz"}},
				},
			},
			FinishReason: "STOP",
		}},
	}

	result := Extract(resp, ModelPro, ModeGenerate)

	assert.True(t, result.Success)
	assert.Equal(t, ModelPro, result.Model)
	assert.Equal(t, "Here is your balloon", result.Text)
	assert.Equal(t, "STOP", result.FinishReason)
	require.NotNil(t, result.Image)
	assert.Equal(t, "image/png", result.Image.MIMEType)
	assert.Equal(t, "cGl4ZWxz", result.Image.Data)
	assert.Empty(t, result.Error)
}

func TestExtract_LastPartWins(t *testing.T) {
	resp := &Response{
		Candidates: []Candidate{{
			Content: Content{
				Parts: []Part{
					{Text: "first text"},
					{InlineData: &Blob{MIMEType: "image/png", Data: "Zmlyc3Q="}},
					{Text: "second text"},
					{InlineData: &Blob{MIMEType: "image/webp", Data: "c2Vjb25k"}},
				},
			},
			FinishReason: "STOP",
		}},
	}

	result := Extract(resp, ModelFlash, ModeGenerate)

	assert.True(t, result.Success)
	assert.Equal(t, "second text", result.Text)
	require.NotNil(t, result.Image)
	assert.Equal(t, "image/webp", result.Image.MIMEType)
	assert.Equal(t, "c2Vjb25k", result.Image.Data)
}

func TestExtract_OnlyFirstCandidateConsulted(t *testing.T) {
	resp := &Response{
		Candidates: []Candidate{
			{
				Content: Content{Parts: []Part{{Text: "no image here"}}},
			},
			{
				Content: Content{Parts: []Part{
					{InlineData: &Blob{MIMEType: "image/png", Data: "aWdub3JlZA=="}},
				}},
			},
		},
	}

	result := Extract(resp, ModelFlash, ModeGenerate)

	assert.False(t, result.Success)
	assert.Nil(t, result.Image)
	assert.Equal(t, "no image here", result.Text)
}
