package main

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func newDailyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Play today's word (same for everyone, one game)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := words.NewDailySelector(a.words, a.cfg.DailySalt, nil)
			if err != nil {
				return err
			}
			return a.play(cmd, sel, false)
		},
	}
}
