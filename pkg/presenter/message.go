// Package presenter は解析結果とエラーを、利用者に表示するメッセージへ変換します。
// アダプターは表示先に依存せず、エラーの文言化はこのパッケージだけが担います。
package presenter

import (
	"errors"
	"fmt"

	"github.com/shouni/gemini-invoice-analyzer/pkg/config"
	"github.com/shouni/gemini-invoice-analyzer/pkg/domain"
)

// Level はメッセージの重要度です。
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// 利用者向けの固定文言
const (
	MsgUploadToStart   = "Upload an image file to start."
	MsgNoValidResponse = "No valid response received."
	MsgMissingAPIKey   = "API key not found. Set GOOGLE_API_KEY in the .env file."
)

// Message は表示用の1件のメッセージです。
type Message struct {
	Level Level
	Text  string
}

func (m Message) IsError() bool { return m.Level == LevelError }

// FromError は err を1件のメッセージに変換します。err が nil の場合は ok=false を返します。
func FromError(err error) (Message, bool) {
	if err == nil {
		return Message{}, false
	}

	var decodeErr *domain.DecodeError
	var adapterErr *domain.AdapterError
	switch {
	case errors.Is(err, domain.ErrEmptyResult):
		return Message{Level: LevelInfo, Text: MsgNoValidResponse}, true
	case errors.As(err, &decodeErr):
		return errorf("Error opening image: %v", decodeErr.Err), true
	case errors.As(err, &adapterErr):
		return errorf("Error generating response: %v", adapterErr.Err), true
	default:
		return errorf("Error generating response: %v", err), true
	}
}

// FromStartupError は起動時の設定エラーを文言化します。
func FromStartupError(err error) Message {
	if errors.Is(err, config.ErrMissingAPIKey) {
		return Message{Level: LevelError, Text: MsgMissingAPIKey}
	}
	return errorf("Configuration error: %v", err)
}

func errorf(format string, args ...any) Message {
	return Message{Level: LevelError, Text: fmt.Sprintf(format, args...)}
}
