package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/internal/devcli"
	"github.com/urlquery/urlquery-go/urlquery"
)

// NewReportCmd fetches one analysis report.
func NewReportCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.ReportRequest
	cmd := &cobra.Command{
		Use:   "report <report-id>",
		Short: "Fetch an analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ReportID = args[0]
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.Report(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().IntVar(&req.Flag, "flag", 0, "Legacy section bitmask, 0-15 (V1)")
	cmd.Flags().IntVar(&req.RecentLimit, "recent-limit", 0, "Number of recent reports from the same domain/IP/ASN")
	cmd.Flags().BoolVar(&req.IncludeDetails, "details", false, "Include alerts, JavaScript and transaction data (V3)")
	cmd.Flags().BoolVar(&req.IncludeScreenshot, "screenshot", false, "Include a base64 screenshot (V3)")
	cmd.Flags().BoolVar(&req.IncludeDomainGraph, "domain-graph", false, "Include a base64 domain graph (V3)")
	return cmd
}

// NewReportListCmd lists recently finished reports.
func NewReportListCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.ReportListRequest
	var all bool
	cmd := &cobra.Command{
		Use:   "report-list",
		Short: "List recently finished reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()

			if all {
				return pageAll(ctx, cl, req)
			}
			out, err := cl.ReportList(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Timestamp, "timestamp", "", "Starting point, free-form date (default: now)")
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "Page size (default 50)")
	cmd.Flags().BoolVar(&all, "all", false, "Page through every report from the starting point")
	return cmd
}

func pageAll(ctx context.Context, cl *urlquery.Client, req urlquery.ReportListRequest) error {
	pager := &urlquery.ReportPager{Client: cl, Timestamp: req.Timestamp, Limit: req.Limit}
	for {
		reports, err := pager.Next(ctx)
		if err != nil {
			return err
		}
		if reports == nil {
			return nil
		}
		for _, r := range reports {
			devcli.PrintJSON(r)
		}
	}
}
