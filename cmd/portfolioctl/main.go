// Package main implements portfolioctl, an operator tool for checking the
// profile document and exercising contact links and QR export offline.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"portfolio-site/internal/domain/profile"
	"portfolio-site/internal/infrastructure/profilefile"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type cli struct {
	profilePath string
	out         io.Writer
	logger      *log.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, logger: log.New(errOut, "", log.LstdFlags)}

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Portfolio site operator tool",
		Long:          "portfolioctl validates and inspects the portfolio profile, prints contact links and exports the QR code image.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&c.profilePath, "profile", "p", os.Getenv("PROFILE_PATH"), "Path to profile YAML (default: embedded profile)")

	root.AddCommand(c.profileCmd(), c.contactCmd(), c.qrCmd())
	return root
}

func (c *cli) loadStore() (*profile.Store, error) {
	store, err := profilefile.Load(c.profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return store, nil
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
