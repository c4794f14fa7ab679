package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solatis/segmentvet/internal/core/api"
)

func newLimitationsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limitations",
		Short: "Analyze technical limitations across the catalog",
		Long:  "Without --text, groups every restricted or limited segment by limitation category. With --text, classifies a single limitation.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLimitations(cmd, opts)
		},
	}
	cmd.Flags().String("text", "", "classify a single limitation text")
	cmd.Flags().StringP("output", "o", outputText, "output format (text, json)")
	return cmd
}

func runLimitations(cmd *cobra.Command, opts *rootOptions) error {
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

	out := cmd.OutOrStdout()

	if cmd.Flags().Changed("text") {
		text, _ := cmd.Flags().GetString("text")
		resp, err := service.CategorizeLimitation(ctx, &api.CategorizeLimitationRequest{Text: text})
		if err != nil {
			return err
		}
		if format == outputJSON {
			return writeJSON(out, resp)
		}
		fmt.Fprintln(out, resp.Category.Name)
		return nil
	}

	resp, err := service.AnalyzeLimitations(ctx, &api.AnalyzeLimitationsRequest{})
	if err != nil {
		return err
	}
	if format == outputJSON {
		return writeJSON(out, resp)
	}

	a := resp.Analysis
	p := newPrinter()
	p.Fprintf(out, "%d restricted segment(s), %d compatible segment(s) with limitations\n", a.RestrictedCount, a.LimitedCount)

	for _, g := range a.Groups {
		fmt.Fprintf(out, "\n%s (%d)\n", g.Category.Name, len(g.Segments))
		for _, s := range g.Segments {
			marker := "limited"
			if s.Blocked {
				marker = "blocked"
			}
			fmt.Fprintf(out, "  - %s [%s]: %s\n", s.ID, marker, strings.Join(s.Limitations, "; "))
		}
	}

	if len(a.Restricted) > 0 {
		fmt.Fprintln(out, "\nRestricted segments")
		tw := newTable(out)
		fmt.Fprintln(tw, "ID\tREASON\tRECOMMENDATION")
		for _, r := range a.Restricted {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Reason, r.Recommendation)
		}
		return tw.Flush()
	}
	return nil
}
