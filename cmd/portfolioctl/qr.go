package main

import (
	"fmt"
	"os"
	"strings"

	"portfolio-site/internal/infrastructure/qrcode"
	"portfolio-site/internal/usecase"

	"github.com/spf13/cobra"
)

func (c *cli) qrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Work with the profile QR code",
	}

	var out, target string
	opts := qrcode.DefaultOptions()

	export := &cobra.Command{
		Use:   "export",
		Short: "Write the QR code PNG to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}

			t := strings.TrimSpace(target)
			if t == "" {
				t = store.Contact().QRCodeLink
			}

			uc := usecase.NewQRUsecase(t, opts, qrcode.NewRenderer(c.logger), nil, 0, c.logger)
			png, err := uc.PNG(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to render qr code: %w", err)
			}

			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(c.out, "wrote %s (%d bytes) | target=%s\n", out, len(png), t)
			return nil
		},
	}

	export.Flags().StringVarP(&out, "out", "o", "", "Output PNG path (required)")
	export.Flags().StringVar(&target, "target", "", "Encode this URL instead of the profile link")
	export.Flags().IntVar(&opts.Width, "width", opts.Width, "Requested image width in pixels")
	export.Flags().IntVar(&opts.Margin, "margin", opts.Margin, "Quiet zone in modules")
	if err := export.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	cmd.AddCommand(export)
	return cmd
}
