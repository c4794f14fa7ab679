package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/solatis/segmentvet/internal/core/api"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project reach, impressions and cost for a segment selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts)
		},
	}
	cmd.Flags().StringSliceP("segment", "s", nil, "segment id to select (repeatable or comma separated)")
	cmd.Flags().Float64("budget", 0, "campaign budget in dollars (default: model default budget)")
	cmd.Flags().StringP("output", "o", outputText, "output format (text, json)")
	return cmd
}

func runProject(cmd *cobra.Command, opts *rootOptions) error {
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

	req := &api.ComputeProjectionRequest{}
	req.SegmentIDs, _ = cmd.Flags().GetStringSlice("segment")
	if cmd.Flags().Changed("budget") {
		budget, _ := cmd.Flags().GetFloat64("budget")
		req.Budget = &budget
	}

	resp, err := service.ComputeProjection(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == outputJSON {
		return writeJSON(out, resp)
	}
	return printReport(out, resp)
}

func printReport(out io.Writer, resp *api.ComputeProjectionResponse) error {
	p := newPrinter()
	r := resp.Report
	proj := r.Projection

	if len(resp.UnknownIDs) > 0 {
		fmt.Fprintf(out, "Unknown segments ignored: %s\n\n", strings.Join(resp.UnknownIDs, ", "))
	}

	p.Fprintf(out, "Budget:                 $%.2f\n", r.Budget)
	p.Fprintf(out, "Compatible segments:    %d\n", proj.CompatibleCount)
	p.Fprintf(out, "Total audience:         %d\n", proj.TotalAudience)
	p.Fprintf(out, "Average match rate:     %.1f%%\n", proj.AverageMatchRate)
	p.Fprintf(out, "Average CPM:            $%.2f\n", proj.AverageCPM)
	p.Fprintf(out, "Average viewability:    %.1f%%\n", proj.AverageViewability)
	p.Fprintf(out, "Cost premium:           %.1f%%\n", proj.CostPremium)
	p.Fprintf(out, "Working media:          $%.2f (%.0f%%)\n", proj.WorkingMediaAmount, proj.WorkingMediaPercentage)
	p.Fprintf(out, "Estimated impressions:  %.0f\n", proj.EstimatedImpressions)
	p.Fprintf(out, "Projected reach:        %.0f\n", proj.ProjectedReach)
	p.Fprintf(out, "Setup time:             %d week(s)\n", proj.TotalSetupTime)

	fmt.Fprintln(out, "\nCost split")
	tw := newTable(out)
	writeMoneyRow(tw, p, "Working media", r.CostSplit.WorkingMedia)
	writeMoneyRow(tw, p, "Platform fees", r.CostSplit.PlatformFees)
	writeMoneyRow(tw, p, "Account management", r.CostSplit.AccountManagement)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nPath comparison")
	tw = newTable(out)
	fmt.Fprintln(tw, "PATH\tWORKING MEDIA\tMATCH RATE\tCPM\tVIEWABILITY")
	for _, row := range r.Comparison.Rows() {
		fmt.Fprintln(tw, p.Sprintf("%s\t%.0f%%\t%.1f%%\t$%.2f\t%.1f%%",
			row.Path, row.WorkingMedia, row.MatchRate, row.CPM, row.Viewability))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Breakdown) > 0 {
		fmt.Fprintln(out, "\nSegments")
		tw = newTable(out)
		fmt.Fprintln(tw, "ID\tCATEGORY\tAUDIENCE\tMATCH RATE\tCPM")
		for _, b := range r.Breakdown {
			fmt.Fprintln(tw, p.Sprintf("%s\t%s\t%d\t%.1f%%\t$%.2f", b.ID, b.Category, b.Audience, b.MatchRate, b.CPM))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func writeMoneyRow(w io.Writer, p *message.Printer, label string, amount float64) {
	fmt.Fprintln(w, p.Sprintf("%s\t$%.2f", label, amount))
}
