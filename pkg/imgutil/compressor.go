package imgutil

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
)

// PreviewQuality はプレビュー表示用 JPEG の品質です。
const PreviewQuality = 75

// CompressToJPEG は画像を JPEG 形式に圧縮します。
func CompressToJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PreviewDataURI は画像を JPEG に圧縮し、img タグにそのまま埋め込める data URI を返します。
func PreviewDataURI(img image.Image) (string, error) {
	data, err := CompressToJPEG(img, PreviewQuality)
	if err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}
