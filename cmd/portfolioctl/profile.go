package main

import (
	"errors"
	"fmt"

	"portfolio-site/internal/infrastructure/profilefile"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (c *cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect the profile document",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the profile against its schema",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := c.loadStore()
			if err != nil {
				var verr *profilefile.ValidationError
				if errors.As(err, &verr) {
					for _, fe := range verr.Errors {
						fmt.Fprintf(c.out, "  %s: %s\n", fe.Field, fe.Message)
					}
				}
				return err
			}

			stats := store.Stats()
			fmt.Fprintf(c.out, "profile ok | name=%s skills=%d projects=%d certifications=%d\n",
				store.Identity().Name, len(store.Skills()), stats.Projects, stats.Certifications)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the decoded profile",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := c.loadStore()
			if err != nil {
				return err
			}
			dumpConfig.Fdump(c.out, store.Snapshot())
			return nil
		},
	})

	return cmd
}
