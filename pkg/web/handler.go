package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"github.com/shouni/gemini-invoice-analyzer/pkg/analyzer"
	"github.com/shouni/gemini-invoice-analyzer/pkg/imgutil"
	"github.com/shouni/gemini-invoice-analyzer/pkg/presenter"
)

const (
	fieldPrompt = "prompt"
	fieldImage  = "image"
)

// allowedExtensions はアップロードフォームで受け付ける拡張子です。
var allowedExtensions = []string{".jpg", ".png", ".jpeg"}

// Handler はアップロード、プレビュー、解析結果表示を行う1ページのUIです。
// リクエスト間で状態は共有しません。
type Handler struct {
	analyzer       analyzer.Analyzer
	maxUploadBytes int64
}

// NewHandler は依存関係を注入して Handler を初期化します。
func NewHandler(a analyzer.Analyzer, maxUploadBytes int64) (*Handler, error) {
	if a == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if maxUploadBytes <= 0 {
		return nil, fmt.Errorf("maxUploadBytes must be positive: %d", maxUploadBytes)
	}
	return &Handler{analyzer: a, maxUploadBytes: maxUploadBytes}, nil
}

// Router はルーティングを設定した http.Handler を返します。
func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/analyze", h.analyze).Methods(http.MethodPost)
	r.HandleFunc("/health", health).Methods(http.MethodGet)
	return r
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	data := newPageData("")
	data.addMessage(presenter.Message{Level: presenter.LevelInfo, Text: presenter.MsgUploadToStart})
	render(w, http.StatusOK, data)
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		data := newPageData("")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			data.addError("Uploaded file is too large (limit %d MB).", h.maxUploadBytes>>20)
			render(w, http.StatusRequestEntityTooLarge, data)
			return
		}
		data.addError("Invalid form submission: %v", err)
		render(w, http.StatusBadRequest, data)
		return
	}
	defer r.MultipartForm.RemoveAll()

	prompt := r.FormValue(fieldPrompt)
	data := newPageData(prompt)

	file, header, err := r.FormFile(fieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		data.addMessage(presenter.Message{Level: presenter.LevelInfo, Text: presenter.MsgUploadToStart})
		render(w, http.StatusOK, data)
		return
	}
	if err != nil {
		data.addError("Error reading upload: %v", err)
		render(w, http.StatusBadRequest, data)
		return
	}
	defer file.Close()

	if !isAllowedExtension(header.Filename) {
		data.addError("Unsupported file type %q. Allowed types: jpg, png, jpeg.", filepath.Ext(header.Filename))
		render(w, http.StatusBadRequest, data)
		return
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		data.addError("Error reading upload: %v", err)
		render(w, http.StatusBadRequest, data)
		return
	}

	img, format, err := imgutil.Decode(raw)
	if err != nil {
		slog.WarnContext(r.Context(), "アップロード画像のデコードに失敗しました", "filename", header.Filename, "error", err)
		msg, _ := presenter.FromError(err)
		data.addMessage(msg)
		render(w, http.StatusBadRequest, data)
		return
	}
	slog.InfoContext(r.Context(), "画像を受け付けました", "filename", header.Filename, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if preview, err := imgutil.PreviewDataURI(img); err == nil {
		data.PreviewURI = template.URL(preview)
	} else {
		slog.WarnContext(r.Context(), "プレビューの生成に失敗しました", "error", err)
	}

	// 一度送信したリクエストはクライアントが切断しても完了まで実行する
	ctx := context.WithoutCancel(r.Context())
	answer, err := h.analyzer.Analyze(ctx, prompt, img)
	data.ShowResponse = true
	data.Answer = answer

	status := http.StatusOK
	if msg, ok := presenter.FromError(err); ok {
		data.addMessage(msg)
		if msg.IsError() {
			status = http.StatusBadGateway
		}
	}
	render(w, status, data)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

func newPageData(prompt string) *pageData {
	return &pageData{Prompt: prompt, Accept: strings.Join(allowedExtensions, ",")}
}

func (d *pageData) addMessage(m presenter.Message) {
	d.Messages = append(d.Messages, message{Level: string(m.Level), Text: m.Text})
}

func (d *pageData) addError(format string, args ...any) {
	d.addMessage(presenter.Message{Level: presenter.LevelError, Text: fmt.Sprintf(format, args...)})
}

func isAllowedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func render(w http.ResponseWriter, status int, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		slog.Error("テンプレートの描画に失敗しました", "error", err)
	}
}
