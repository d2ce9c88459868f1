package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"daily-journal/internal/model"
)

func tagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage source, author and category tags",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list <source|author|category>",
		Short: "List tags of a kind, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseTagKind(args[0])
			if err != nil {
				return err
			}
			tags, err := a.tags.ListTags(cmd.Context(), kind)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", tag.ID, tag.Name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <source|author|category> <name>",
		Short: "Create a tag",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseTagKind(args[0])
			if err != nil {
				return err
			}
			tag, err := a.tags.CreateTag(cmd.Context(), strings.Join(args[1:], " "), kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", tag.ID, tag.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a tag and clear it from every item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			tag, err := a.tags.GetTag(cmd.Context(), id)
			if err != nil {
				return err
			}
			cleared, err := a.tags.DeleteTag(cmd.Context(), *tag)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s tag %q, cleared from %d item(s)\n", tag.Kind, tag.Name, cleared)
			return nil
		},
	})

	return cmd
}
