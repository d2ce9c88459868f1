package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func manifestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Manage the vision board",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pinned notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.manifest.ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			for _, note := range notes {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [style %d] %s\n", note.ID, note.Style, note.Text)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <style 0-5> <text>",
		Short: "Pin a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid style %q: %w", args[0], err)
			}
			note, err := a.manifest.AddNote(cmd.Context(), strings.Join(args[1:], " "), style)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  [style %d] %s\n", note.ID, note.Style, note.Text)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			if err := a.manifest.DeleteNote(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			return nil
		},
	})

	return cmd
}
