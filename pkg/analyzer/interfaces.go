package analyzer

import (
	"context"
	"image"

	"google.golang.org/genai"
)

// GenerativeModel は生成サービスとの通信を抽象化するインターフェースです。
// GeminiClient がこれを満たします。
type GenerativeModel interface {
	// GenerateWithParts は parts を1つのユーザーコンテンツとして送信し、応答をそのまま返します。
	GenerateWithParts(ctx context.Context, modelName string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

// Analyzer はUI層が利用する解析の窓口です。
type Analyzer interface {
	Analyze(ctx context.Context, prompt string, img image.Image) (string, error)
}
