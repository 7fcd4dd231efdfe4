package analyzer

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/shouni/gemini-invoice-analyzer/pkg/domain"
	"github.com/shouni/gemini-invoice-analyzer/pkg/imgutil"
)

// GeminiAnalyzer はプロンプトと画像を1つのマルチモーダルリクエストにまとめ、
// 応答から最初のテキストを取り出すアダプターです。状態は保持しません。
type GeminiAnalyzer struct {
	aiClient GenerativeModel
	model    string
}

// NewGeminiAnalyzer は依存関係を注入して GeminiAnalyzer を初期化します。
func NewGeminiAnalyzer(aiClient GenerativeModel, model string) (*GeminiAnalyzer, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (GenerativeModel) is required")
	}
	if model == "" {
		model = DefaultModel
	}

	return &GeminiAnalyzer{
		aiClient: aiClient,
		model:    model,
	}, nil
}

// Model は使用するモデル名を返します。
func (a *GeminiAnalyzer) Model() string { return a.model }

// Analyze は画像を PNG に再エンコードしてプロンプトと共に送信し、
// 最初の候補の最初のパーツのテキストを返します。
//
// 応答に利用可能なテキストがない場合は domain.ErrEmptyResult を、
// 通信に失敗した場合は *domain.AdapterError を返します。prompt と img は変更しません。
func (a *GeminiAnalyzer) Analyze(ctx context.Context, prompt string, img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image is required")
	}

	payload, err := imgutil.EncodePNG(img)
	if err != nil {
		return "", err
	}

	parts := buildParts(prompt, payload)
	slog.InfoContext(ctx, "Gemini解析リクエストを送信します",
		"model", a.model, "prompt_len", len(prompt), "png_bytes", len(payload.Data))

	resp, err := a.aiClient.GenerateWithParts(ctx, a.model, parts)
	if err != nil {
		slog.WarnContext(ctx, "Geminiへのリクエストに失敗しました", "model", a.model, "error", err)
		return "", &domain.AdapterError{Model: a.model, Err: err}
	}

	text, ok := extractFirstText(resp)
	if !ok {
		slog.WarnContext(ctx, "Geminiから有効な応答がありませんでした", "model", a.model)
		return "", domain.ErrEmptyResult
	}
	return text, nil
}
