package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"daily-journal/internal/model"
)

func logCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage the day's logged content",
	}
	cmd.AddCommand(logAddCmd(a), logFileCmd(a), logListCmd(a), logRemoveCmd(a), logTagCmd(a))
	return cmd
}

func logAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Fetch a URL and log it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			item, err := a.capture.AddURL(cmd.Context(), date, args[0])
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}
}

func logFileCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Log a local image, PDF or document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			item, err := a.capture.AddFile(cmd.Context(), date, filepath.Base(args[0]), data, model.ItemKind(kind))
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "kind to use when the extension is not recognised (image|pdf|document)")
	return cmd
}

func logListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the day's logged items, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.date()
			if err != nil {
				return err
			}
			items, err := a.days.ListLoggedItems(cmd.Context(), date)
			if err != nil {
				return err
			}
			for _, item := range items {
				printItem(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
}

func logRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a logged item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := a.days.DeleteLoggedItem(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}
}

func logTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tag <id> <source|author|category> [value]",
		Short: "Set or clear a tag on a logged item",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			kind, err := model.ParseTagKind(args[1])
			if err != nil {
				return err
			}
			var value string
			if len(args) == 3 {
				value = args[2]
			}
			if err := a.days.UpdateLoggedItemTag(cmd.Context(), id, kind, value); err != nil {
				return err
			}
			item, err := a.days.GetLoggedItem(cmd.Context(), id)
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), *item)
			return nil
		},
	}
}
