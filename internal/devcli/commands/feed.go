package commands

import (
	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/internal/devcli"
	"github.com/urlquery/urlquery-go/urlquery"
)

// NewFeedCmd fetches one slice of the main URL feed.
func NewFeedCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.FeedRequest
	var stream bool
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Fetch one time slice of the URL feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()

			if stream {
				sc, err := cl.FeedStream(ctx, req)
				if err != nil {
					return err
				}
				defer sc.Close()
				var entry map[string]any
				for sc.Next(&entry) {
					devcli.PrintJSON(entry)
				}
				return sc.Err()
			}

			out, err := cl.Feed(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Feed, "feed", "", "Feed variant: unfiltered or flagged (V3)")
	cmd.Flags().StringVar(&req.Interval, "interval", "", "Slice size: hour or day")
	cmd.Flags().StringVar(&req.Timestamp, "timestamp", "", "Any instant inside the wanted slice")
	cmd.Flags().BoolVar(&stream, "stream", false, "Stream feed entries one JSON object per line")
	return cmd
}

// NewFlaggedCmd fetches the flagged-URL reputation feed.
func NewFlaggedCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.FlaggedURLsRequest
	var confidence int
	cmd := &cobra.Command{
		Use:   "flagged",
		Short: "Fetch one time slice of the flagged-URL feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Confidence = &confidence
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.FlaggedURLs(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Interval, "interval", "", "Slice size: hour or day")
	cmd.Flags().StringVar(&req.Timestamp, "timestamp", "", "Any instant inside the wanted slice")
	cmd.Flags().IntVar(&confidence, "confidence", 2, "Detection confidence: 0, 1 or 2")
	return cmd
}
