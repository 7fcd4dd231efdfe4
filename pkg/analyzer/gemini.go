package analyzer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient は genai SDK を利用して GenerativeModel を実装します。
// タイムアウトやリトライは付与せず、呼び出しは応答かエラーが返るまでブロックします。
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient は API キーから Gemini API 用のクライアントを生成します。
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genaiクライアントの生成に失敗しました: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// GenerateWithParts は parts をユーザーロールの単一コンテンツとして送信します。
func (c *GeminiClient) GenerateWithParts(ctx context.Context, modelName string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{{Role: "user", Parts: parts}}
	return c.client.Models.GenerateContent(ctx, modelName, contents, nil)
}
