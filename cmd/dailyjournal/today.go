package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func todayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the selected day's items and journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			day, err := a.days.DayWithChildren(cmd.Context(), date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Day %s\n\n", day.DayKey)
			fmt.Fprintf(out, "Logged items (%d):\n", len(day.Items))
			for _, item := range day.Items {
				printItem(out, item)
			}
			if day.Journal != nil {
				fmt.Fprintln(out)
				printJournal(out, day.Journal)
			}
			return nil
		},
	}
}
