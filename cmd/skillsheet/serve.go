package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	apihttp "github.com/ptplabs/skillsheet-go/api/http"
	"github.com/ptplabs/skillsheet-go/api/http/handlers"
	"github.com/ptplabs/skillsheet-go/pkg/config"
)

func newServeCommand() *cobra.Command {
	var (
		configPath string
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the skill extraction HTTP service",
		Long: `serve starts an HTTP service that accepts workbook uploads on
POST /api/v1/extract and responds with the generated review workbook
path and the share message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.Listen = listenAddr
			}
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("prepare output directory: %w", err)
			}

			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			app := fiber.New(fiber.Config{
				BodyLimit: int(cfg.Upload.MaxBytes) + 1<<20, // headroom for multipart framing
			})
			apihttp.Register(app,
				handlers.NewExtractHandler(cfg, log),
				handlers.NewHealthHandler(),
			)

			log.Info("listening", "addr", cfg.Listen, "output_dir", cfg.OutputDir)
			return app.Listen(cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to TOML config file")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides config)")

	return cmd
}
