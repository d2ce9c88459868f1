package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-journal/internal/model"
)

func journalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Edit the day's career journal",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the career journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			journal, err := a.days.GetOrCreateCareerJournal(cmd.Context(), date)
			if err != nil {
				return err
			}
			printJournal(cmd.OutOrStdout(), journal)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tasks <first> <second> <third>",
		Short: "Set the three priority tasks",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			journal, err := a.days.UpdatePriorityTasks(cmd.Context(), date, args)
			if err != nil {
				return err
			}
			printJournal(cmd.OutOrStdout(), journal)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "activity <morning|afternoon|evening> [text]",
		Short: "Set or clear a time block",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			slot := model.ActivitySlot(args[0])
			journal, err := a.days.UpdateActivity(cmd.Context(), date, slot, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			printJournal(cmd.OutOrStdout(), journal)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reflect <gratitude|inspiration|diary> [content]",
		Short: "Write the day's reflection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			kind := model.ReflectionKind(args[0])
			journal, err := a.days.UpdateReflection(cmd.Context(), date, kind, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reflection saved (%s)\n", journal.ReflectionKind)
			return nil
		},
	})

	return cmd
}
