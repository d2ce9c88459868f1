package main

import (
	"fmt"
	"io"
	"strings"

	"daily-journal/internal/model"
)

func printItem(w io.Writer, item model.LoggedItem) {
	fmt.Fprintf(w, "%s  %-8s %s\n", item.ID, item.Kind, item.Title)
	if item.SourceURL != nil {
		fmt.Fprintf(w, "    %s\n", *item.SourceURL)
	}
	var tags []string
	for _, kind := range model.TagKinds {
		if v := item.TagValue(kind); v != nil {
			tags = append(tags, fmt.Sprintf("%s=%s", kind, *v))
		}
	}
	if len(tags) > 0 {
		fmt.Fprintf(w, "    tags: %s\n", strings.Join(tags, ", "))
	}
}

func printJournal(w io.Writer, journal *model.CareerJournal) {
	fmt.Fprintln(w, "Priority tasks:")
	for i, task := range journal.PriorityTasks {
		if task == "" {
			task = "-"
		}
		fmt.Fprintf(w, "  %d. %s\n", i+1, task)
	}
	fmt.Fprintln(w, "Time blocks:")
	for _, slot := range []model.ActivitySlot{model.SlotMorning, model.SlotAfternoon, model.SlotEvening} {
		text := "-"
		if v := journal.Activity(slot); v != nil {
			text = *v
		}
		fmt.Fprintf(w, "  %-9s %s\n", slot, text)
	}
	content := journal.ReflectionContent
	if content == "" {
		content = "-"
	}
	fmt.Fprintf(w, "Reflection (%s): %s\n", journal.ReflectionKind, content)
}
