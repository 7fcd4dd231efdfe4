package analyzer

import (
	"github.com/shouni/gemini-invoice-analyzer/pkg/domain"
	"google.golang.org/genai"
)

// buildParts はテキスト、画像の順で2つのパーツを組み立てます。この順序は変えません。
// Blob.Data は送信時に SDK によって base64 テキストへ変換されます。
func buildParts(prompt string, payload domain.EncodedImagePayload) []*genai.Part {
	parts := make([]*genai.Part, 0, requestPartCount)
	parts = append(parts,
		&genai.Part{Text: prompt},
		&genai.Part{InlineData: &genai.Blob{MIMEType: payload.MIMEType, Data: payload.Data}},
	)
	return parts
}

// extractFirstText は最初の候補の最初のパーツのテキストだけを返します。
// 2つ目以降のパーツや候補は参照しません。
func extractFirstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}

	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", false
	}

	part := candidate.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", false
	}
	return part.Text, true
}
