package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResult は通信は成功したものの、応答に利用可能なテキストが含まれていなかったことを示します。
var ErrEmptyResult = errors.New("no valid response received")

// DecodeError はアップロードされたバイト列を画像としてデコードできなかったことを示します。
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("画像のデコードに失敗しました: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AdapterError は生成サービスとの通信（ネットワーク、認証、リクエスト拒否など）の失敗を表します。
type AdapterError struct {
	Model string
	Err   error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("Gemini応答生成エラー (model: %s): %v", e.Model, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }
