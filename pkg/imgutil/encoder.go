package imgutil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/shouni/gemini-invoice-analyzer/pkg/domain"
)

// EncodePNG は画像をロスレスな PNG として再エンコードします。
// 元の形式が PNG であっても必ず再エンコードします。
func EncodePNG(img image.Image) (domain.EncodedImagePayload, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return domain.EncodedImagePayload{}, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return domain.EncodedImagePayload{
		MIMEType: domain.MIMETypePNG,
		Data:     buf.Bytes(),
	}, nil
}
