package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-invoice-analyzer/pkg/analyzer"
	"github.com/shouni/gemini-invoice-analyzer/pkg/config"
	"github.com/shouni/gemini-invoice-analyzer/pkg/presenter"
)

const rootLongDesc = `Extract information from invoice images with a Gemini multimodal model.

Configuration is read once at startup from the environment (and an optional
.env file). GOOGLE_API_KEY is required; GEMINI_MODEL, PORT and MAX_UPLOAD_MB
are optional.`

// annotationNeedsConfig が付いたコマンドだけが起動時に設定とクライアントを構築する。
// help や completion は API キーなしで動く。
const annotationNeedsConfig = "needs-config"

// errReported はメッセージ表示済みのため Cobra に再表示させないエラーです。
var errReported = errors.New("reported")

// app は起動時に一度だけ構築される依存関係です。
type app struct {
	cfg      *config.Config
	analyzer *analyzer.GeminiAnalyzer
}

type rootCommander struct {
	debug   bool
	envFile string
	app     app
}

func newRootCmd() *cobra.Command {
	cmder := &rootCommander{}

	cmd := &cobra.Command{
		Use:           "invoice-analyzer",
		Short:         "Gemini Invoice Analyzer",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNeedsConfig] != "true" {
				return nil
			}
			return cmder.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cmder.envFile, "env-file", "", "Path to a .env file (default: ./.env if present)")

	cmd.AddCommand(newServeCmd(&cmder.app))
	cmd.AddCommand(newAnalyzeCmd(&cmder.app))

	return cmd
}

// setup はロギングを初期化し、設定とクライアントを検証します。
// ここで失敗した場合はどのリクエストも処理しません。
func (c *rootCommander) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var envFiles []string
	if c.envFile != "" {
		envFiles = append(envFiles, c.envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		return reportStartup(cmd, err)
	}

	client, err := analyzer.NewGeminiClient(cmd.Context(), cfg.APIKey)
	if err != nil {
		return reportStartup(cmd, err)
	}

	a, err := analyzer.NewGeminiAnalyzer(client, cfg.Model)
	if err != nil {
		return reportStartup(cmd, err)
	}

	c.app.cfg = cfg
	c.app.analyzer = a
	slog.Debug("設定を読み込みました", "model", cfg.Model, "port", cfg.Port, "max_upload_mb", cfg.MaxUploadMB)
	return nil
}

func reportStartup(cmd *cobra.Command, err error) error {
	msg := presenter.FromStartupError(err)
	fmt.Fprintln(cmd.ErrOrStderr(), msg.Text)
	slog.Error("起動に失敗しました", "error", err)
	return errReported
}
