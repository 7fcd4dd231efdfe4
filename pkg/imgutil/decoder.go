package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/kolesa-team/go-webp/webp" // WebP デコーダー登録 (image.RegisterFormat)

	"github.com/shouni/gemini-invoice-analyzer/pkg/domain"
)

// MaxImagePixels はデコードを許可する最大ピクセル数 (幅×高さ) です。
// ヘッダーだけ巨大な画像によるメモリ枯渇を防ぎます。
const MaxImagePixels int64 = 1024 * 1024 * 1024 / 4 / 3

// Decode はアップロードされたバイト列を画像にデコードします。
// image.Decode に登録された形式 (PNG, JPEG, GIF, WebP) に対応しています。
// 失敗時は部分的な画像を返さず、原因を保持した *domain.DecodeError を返します。
func Decode(data []byte) (image.Image, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &domain.DecodeError{Err: err}
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, "", &domain.DecodeError{
			Err: fmt.Errorf("画像サイズが上限を超えています: %dx%d (上限 %d ピクセル)", cfg.Width, cfg.Height, MaxImagePixels),
		}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &domain.DecodeError{Err: err}
	}
	return img, format, nil
}
