package domain

import "encoding/base64"

// MIMETypePNG はアップロード形式に関わらずモデルへ送信する画像の MIME タイプです。
const MIMETypePNG = "image/png"

// EncodedImagePayload は PNG に再エンコードされた画像とその MIME タイプです。
// リクエストごとに新しく生成され、生成後は変更されません。
type EncodedImagePayload struct {
	MIMEType string
	Data     []byte // PNG バイト列
}

// Base64 は Data を標準 base64 テキストで返します。
func (p EncodedImagePayload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Data)
}

