package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/pingponglab/traintracker/internal/runs"
	"github.com/spf13/cobra"
)

func newResultsCmd(st *cliState) *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "results [run-id]",
		Short: "Show metrics for a run (latest when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openService(st)
			if err != nil {
				return err
			}
			defer closeStore()

			var m *runs.Metrics
			if len(args) == 1 {
				m, err = svc.Metrics(cmd.Context(), args[0])
			} else {
				m, err = svc.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "points: %d\n", len(m.Steps))
			fmt.Fprintf(out, "last: %s\n", floatOrDash(m.Last))
			if m.Best != nil {
				fmt.Fprintf(out, "best: episode=%s steps=%s reward=%s\n",
					intOrDash(m.Best.Episode), intOrDash(m.Best.Steps), floatOrDash(m.Best.Reward))
			} else {
				fmt.Fprintln(out, "best: -")
			}

			n := len(m.Steps)
			start := 0
			if tail > 0 && n > tail {
				start = n - tail
			}
			if n == 0 {
				return nil
			}

			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "STEPS\tAVG_RETURN\tELAPSED_MIN")
			for i := start; i < n; i++ {
				fmt.Fprintf(tw, "%s\t%s\t%s\n",
					intOrDash(m.Steps[i]), floatOrDash(m.Returns[i]), floatOrDash(m.Elapsed[i]))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&tail, "tail", 10, "show only the last N points (0 for all)")
	return cmd
}
