package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRunsCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List training runs, latest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := openService(st)
			if err != nil {
				return err
			}
			defer closeStore()

			summaries, err := svc.Summaries(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tMODEL\tLAST_AVG_RETURN\tBEST_REWARD\tELAPSED_MIN")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					s.Run,
					stringOrDash(s.Model),
					floatOrDash(s.LastAvgReturn),
					floatOrDash(s.BestReward),
					floatOrDash(s.ElapsedMin),
				)
			}
			return tw.Flush()
		},
	}
}

func stringOrDash(v *string) string {
	if v == nil {
		return "-"
	}
	return *v
}

func floatOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intOrDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
