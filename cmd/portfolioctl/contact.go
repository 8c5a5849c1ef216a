package main

import (
	"context"
	"fmt"
	"io"

	"portfolio-site/internal/domain/contact"
	"portfolio-site/internal/usecase"

	"github.com/spf13/cobra"
)

// printHandoff writes the URI instead of opening it.
type printHandoff struct {
	out io.Writer
}

func (h printHandoff) Open(_ context.Context, uri string) error {
	_, err := fmt.Fprintln(h.out, uri)
	return err
}

func (c *cli) contactCmd() *cobra.Command {
	var name, email, message string

	cmd := &cobra.Command{
		Use:   "contact <whatsapp|call|sms|email>",
		Short: "Print the link a contact method opens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := contact.ParseMethod(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}

			store, err := c.loadStore()
			if err != nil {
				return err
			}

			command := contact.Command{Kind: method}
			if method == contact.MethodEmail && (name != "" || email != "" || message != "") {
				command.Payload = &contact.Message{Name: name, Email: email, Message: message}
			}

			uc := usecase.NewContactUsecase(store, c.logger)
			_, err = uc.Dispatch(cmd.Context(), command, printHandoff{out: c.out})
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Sender name for an email message")
	cmd.Flags().StringVar(&email, "email", "", "Sender address for an email message")
	cmd.Flags().StringVar(&message, "message", "", "Body of an email message")
	return cmd
}
