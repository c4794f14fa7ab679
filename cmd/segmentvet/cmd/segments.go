package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solatis/segmentvet/internal/core/api"
)

func newSegmentsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "List and filter the segment catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSegments(cmd, opts)
		},
	}
	cmd.Flags().String("search", "", "case-insensitive search over name and description")
	cmd.Flags().String("category", "all", "category filter (all, retail-graph, in-market, lifestyle, demographic, custom, restricted)")
	cmd.Flags().String("compatibility", "all", "compatibility filter (all, compatible, incompatible)")
	cmd.Flags().Float64("min-match-rate", 0, "minimum match rate midpoint in percent")
	cmd.Flags().Float64("max-cpm", 0, "maximum estimated CPM, 0 for no limit")
	cmd.Flags().StringP("output", "o", outputText, "output format (text, json)")
	return cmd
}

func runSegments(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	format, err := parseOutput(output)
	if err != nil {
		return err
	}

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	service, err := opts.newService(ctx, cfg)
	if err != nil {
		return err
	}

	req := &api.ListSegmentsRequest{}
	req.Search, _ = cmd.Flags().GetString("search")
	req.Category, _ = cmd.Flags().GetString("category")
	req.Compatibility, _ = cmd.Flags().GetString("compatibility")
	req.MinMatchRate, _ = cmd.Flags().GetFloat64("min-match-rate")
	req.MaxCPM, _ = cmd.Flags().GetFloat64("max-cpm")

	resp, err := service.ListSegments(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == outputJSON {
		return writeJSON(out, resp)
	}

	p := newPrinter()
	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tCATEGORY\tCOMPATIBLE\tMATCH RATE\tCPM\tAUDIENCE")
	for _, s := range resp.Segments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Category,
			yesNo(s.KargoCompatible),
			p.Sprintf("%.0f-%.0f%%", s.MatchRateRange.Min(), s.MatchRateRange.Max()),
			p.Sprintf("$%.2f", s.EstimatedCPM),
			p.Sprintf("%d", s.MinimumAudienceSize),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	p.Fprintf(out, "\n%d of %d segments (category=%s, compatibility=%s)\n",
		resp.Matched, resp.Total, resp.Category, resp.Compatibility)
	return nil
}
