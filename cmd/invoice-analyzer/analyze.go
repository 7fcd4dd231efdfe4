package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-invoice-analyzer/pkg/analyzer"
	"github.com/shouni/gemini-invoice-analyzer/pkg/imgutil"
	"github.com/shouni/gemini-invoice-analyzer/pkg/presenter"
)

const analyzeLongDesc = `Analyze a single invoice image and print the answer.

The answer is written to stdout. Informational and error messages are written
to stderr; an error message makes the command exit non-zero.

Examples:
  invoice-analyzer analyze --prompt "Extract total amount" --image invoice.png
  invoice-analyzer analyze -p "List line items" -i scan.jpg`

const analyzeShortDesc = "Analyze one invoice image from a file"

type analyzeCommander struct {
	app       *app
	prompt    string
	imagePath string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	cmder := &analyzeCommander{app: a}

	cmd := &cobra.Command{
		Use:         "analyze",
		Annotations: map[string]string{annotationNeedsConfig: "true"},
		Short:       analyzeShortDesc,
		Long:        analyzeLongDesc,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&cmder.prompt, "prompt", "p", "", "Text prompt sent with the image")
	cmd.Flags().StringVarP(&cmder.imagePath, "image", "i", "", "Path to the invoice image")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}

func (c *analyzeCommander) run(ctx context.Context, stdout, stderr io.Writer) error {
	raw, err := os.ReadFile(c.imagePath)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening image: %v\n", err)
		return errReported
	}
	return analyzeBytes(ctx, c.app.analyzer, c.prompt, raw, stdout, stderr)
}

// analyzeBytes はデコードから解析までを行い、回答とメッセージを書き出します。
func analyzeBytes(ctx context.Context, a analyzer.Analyzer, prompt string, raw []byte, stdout, stderr io.Writer) error {
	img, _, err := imgutil.Decode(raw)
	if err != nil {
		msg, _ := presenter.FromError(err)
		fmt.Fprintln(stderr, msg.Text)
		return errReported
	}

	answer, err := a.Analyze(ctx, prompt, img)
	if msg, ok := presenter.FromError(err); ok {
		fmt.Fprintln(stderr, msg.Text)
		if msg.IsError() {
			return errReported
		}
	}

	fmt.Fprintln(stdout, answer)
	return nil
}
