package analyzer

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は GenerativeModel のテスト用モックです。
type mockAIClient struct {
	calls                 int
	lastModel             string
	lastParts             []*genai.Part
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastModel = model
	m.lastParts = parts
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(ctx, model, parts)
	}
	return textResponse("ok"), nil
}

// textResponse は1候補・指定テキストのパーツを持つ応答を作ります。
func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, s := range texts {
		parts = append(parts, &genai.Part{Text: s})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: parts},
		}},
	}
}
