package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		limit int
		full  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded games from the HISTORY_DB log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.HistoryDB == "" {
				return errors.New("HISTORY_DB is not set; transcripts are only in " + a.cfg.HistoryDir)
			}
			db, err := history.OpenSQLite(a.cfg.HistoryDB)
			if err != nil {
				return err
			}
			defer db.Close()

			rows, err := db.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if full {
				for _, r := range rows {
					fmt.Fprintf(out, "=== %s\n%s\n", r.ID, r.Body)
				}
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tFINISHED\tOUTCOME\tATTEMPTS")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", r.ID, r.FinishedAt.Local().Format("2006-01-02 15:04"), r.Outcome, r.Attempts)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of games to list")
	cmd.Flags().BoolVar(&full, "full", false, "print whole transcripts")
	return cmd
}
