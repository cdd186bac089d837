package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"portfolio-backend/pkg/contactclient"
)

const defaultURL = "http://localhost:8080/api"

func newRootCmd() *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:           "contact",
		Short:         "Send and inspect portfolio contact messages",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "url", defaultURL, "API base URL")

	root.AddCommand(newSendCmd(&baseURL), newCheckCmd(&baseURL))
	return root
}

func newSendCmd(baseURL *string) *cobra.Command {
	var name, email, message string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a message through the contact form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runSend(ctx, cmd.OutOrStdout(), contactclient.New(*baseURL), name, email, message)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "sender name")
	cmd.Flags().StringVar(&email, "email", "", "sender email (used as reply-to)")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

func runSend(ctx context.Context, out io.Writer, submitter contactclient.Submitter, name, email, message string) error {
	form := contactclient.NewForm(submitter,
		contactclient.OnStateChange(func(s contactclient.State) {
			if s != contactclient.StateIdle {
				fmt.Fprintf(out, "state: %s\n", s)
			}
		}))
	form.Set(contactclient.FieldName, name)
	form.Set(contactclient.FieldEmail, email)
	form.Set(contactclient.FieldMessage, message)

	resp, err := form.Submit(ctx)
	if errors.Is(err, contactclient.ErrIncompleteForm) {
		return errors.New("--name, --email and --message are required")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", resp.Message)
	switch resp.Delivery() {
	case contactclient.DeliveryRelayed:
		fmt.Fprintf(out, "message id: %s\n", resp.MessageID)
	case contactclient.DeliveryNotConfigured:
		fmt.Fprintf(out, "warning: %s\n", resp.Warning)
	case contactclient.DeliveryRelayFailed:
		fmt.Fprintf(out, "relay error: %s\n", resp.Error)
	}
	return nil
}

func newCheckCmd(baseURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Show whether the server has mail credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := contactclient.New(*baseURL).Diagnose(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, d.Status)
			fmt.Fprintf(out, "EMAIL_USER: %s\nEMAIL_PASS: %s\n", d.Env["EMAIL_USER"], d.Env["EMAIL_PASS"])
			return nil
		},
	}
}
