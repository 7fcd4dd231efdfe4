package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/gemini-invoice-analyzer/pkg/web"
)

const serveShortDesc = "Serve the invoice analyzer web page"

const shutdownTimeout = 10 * time.Second

type serveCommander struct {
	app  *app
	addr string
}

func newServeCmd(a *app) *cobra.Command {
	cmder := &serveCommander{app: a}

	cmd := &cobra.Command{
		Use:         "serve",
		Annotations: map[string]string{annotationNeedsConfig: "true"},
		Short:       serveShortDesc,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cmder.addr, "addr", "", "Listen address (default \":$PORT\")")

	return cmd
}

func (c *serveCommander) run(ctx context.Context) error {
	h, err := web.NewHandler(c.app.analyzer, c.app.cfg.MaxUploadBytes())
	if err != nil {
		return err
	}

	addr := c.addr
	if addr == "" {
		addr = c.app.cfg.Addr()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("サーバーを起動します", "addr", addr, "model", c.app.analyzer.Model())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("サーバーが停止しました: %w", err)
	case <-ctx.Done():
	}

	slog.Info("シャットダウンします")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
