package commands

import (
	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/internal/devcli"
	"github.com/urlquery/urlquery-go/urlquery"
)

// NewSubmitCmd queues a URL for analysis.
func NewSubmitCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.SubmitRequest
	cmd := &cobra.Command{
		Use:   "submit <url>",
		Short: "Submit a URL for analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.URL = args[0]
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.Submit(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.UserAgent, "useragent", "", "User agent to browse with (see user-agents)")
	cmd.Flags().StringVar(&req.Referer, "referer", "", "Referer applied to the first visited URL")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Queue priority: urlfeed, low, medium or high (V3)")
	cmd.Flags().StringVar(&req.AccessLevel, "access-level", "", "Report visibility: public, nonpublic or private (V3)")
	cmd.Flags().StringVar(&req.CallbackURL, "callback-url", "", "POST results back to this URL when done (V3)")
	cmd.Flags().BoolVar(&req.SubmitVT, "submit-vt", false, "Forward unknown files to VirusTotal (V3)")
	cmd.Flags().BoolVar(&req.SaveOnlyAlerted, "save-only-alerted", false, "Keep only reports that contain alerts (V3)")
	cmd.Flags().IntVar(&req.Flags, "flags", 0, "Legacy report-type bitmask, 0-15 (V1)")
	return cmd
}

// NewMassSubmitCmd queues several URLs with shared settings.
func NewMassSubmitCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.MassSubmitRequest
	cmd := &cobra.Command{
		Use:   "mass-submit <url>...",
		Short: "Submit several URLs with shared settings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.URLs = args
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.MassSubmit(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.UserAgent, "useragent", "", "User agent to browse with")
	cmd.Flags().StringVar(&req.Referer, "referer", "", "Referer applied to the first visited URL")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Queue priority: urlfeed, low, medium or high")
	cmd.Flags().StringVar(&req.AccessLevel, "access-level", "", "Report visibility: public, nonpublic or private")
	cmd.Flags().StringVar(&req.CallbackURL, "callback-url", "", "POST results back to this URL when done")
	cmd.Flags().BoolVar(&req.SaveOnlyAlerted, "save-only-alerted", false, "Keep only reports that contain alerts")
	return cmd
}

// NewQueueStatusCmd polls a queued submission.
func NewQueueStatusCmd(g *devcli.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "queue-status <queue-id>",
		Short: "Poll the status of a queued submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.QueueStatus(ctx, args[0])
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
}

// NewUserAgentsCmd lists accepted user agent strings.
func NewUserAgentsCmd(g *devcli.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "user-agents",
		Short: "List the user agents accepted for submissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.UserAgentList(ctx)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
}
