package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/quota"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/gcalendar"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printQuota(w io.Writer, today quota.UsageOutput, history []quota.Usage) {
	fmt.Fprintf(w, "today %s: %d/%d used, %d remaining\n\n",
		datemath.DayKey(today.Date), today.Used, today.Limit, today.Remaining)

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tREQUESTS")
	for _, u := range history {
		fmt.Fprintf(tw, "%s\t%d\n", datemath.DayKey(u.UsageDate), u.RequestCount)
	}
	tw.Flush()
}

func printInteractions(w io.Writer, items []interaction.Interaction) {
	if len(items) == 0 {
		fmt.Fprintln(w, "no interactions")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tACTIONS\tAUTO\tCREATED\tTEXT")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\t%s\n",
			it.ID, it.Status, len(it.ProposedActions), it.AutoApproved,
			it.CreatedAt.Format(time.RFC3339), shorten(it.SourceText, 48))
	}
	tw.Flush()
}

func printEvents(w io.Writer, events []gcalendar.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "no upcoming events")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "START\tSUMMARY\tID")
	for _, ev := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", ev.StartTime.Format(time.RFC3339), ev.Summary, ev.ID)
	}
	tw.Flush()
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
