package commands

import (
	"github.com/spf13/cobra"

	"github.com/urlquery/urlquery-go/internal/devcli"
	"github.com/urlquery/urlquery-go/urlquery"
)

// NewSearchCmd queries the report database.
func NewSearchCmd(g *devcli.GlobalFlags) *cobra.Command {
	var req urlquery.SearchRequest
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the report database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Q = args[0]
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.Search(ctx, req)
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Type, "type", "", "Search type: string, regexp, ids_alert, urlquery_alert or js_script_hash")
	cmd.Flags().StringVar(&req.ResultType, "result-type", "", "Result type: reports or url_list (V3)")
	cmd.Flags().StringVar(&req.URLMatching, "url-matching", "", "Match against url_host or url_path (V3)")
	cmd.Flags().StringVar(&req.From, "from", "", "Range start, free-form date (default: 30 days before --to)")
	cmd.Flags().StringVar(&req.To, "to", "", "Range end, free-form date (default: now)")
	cmd.Flags().BoolVar(&req.Deep, "deep", false, "Search all URLs, not just submitted ones (V3, resource intensive)")
	return cmd
}

// NewReputationCmd searches the reputation list.
func NewReputationCmd(g *devcli.GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reputation <domain-or-ip>",
		Short: "Search the reputation list of recently detected URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := devcli.NewClient(g)
			if err != nil {
				return err
			}
			ctx, cancel := devcli.Ctx(g)
			defer cancel()
			out, err := cl.Reputation(ctx, args[0])
			if err != nil {
				return err
			}
			devcli.PrintJSON(out)
			return nil
		},
	}
}
