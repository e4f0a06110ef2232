package templatemethod

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// TextReport renders the window as an aligned console table.
type TextReport struct {
	StatsSource
}

func (TextReport) Render(w io.Writer, rooms []RoomStats, sum Summary) {
	fmt.Fprintln(w, "MODERATION REPORT")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Room", "Messages", "Flagged"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	for _, r := range rooms {
		table.Append([]string{r.Room, strconv.Itoa(r.Messages), strconv.Itoa(r.Flagged)})
	}
	table.Render()
	fmt.Fprintf(w, "rooms: %d  messages: %d  flagged: %d  busiest: %s\n",
		sum.Rooms, sum.Messages, sum.Flagged, sum.Busiest)
}

// MarkdownReport renders the same window as a Markdown document.
type MarkdownReport struct {
	StatsSource
}

func (MarkdownReport) Render(w io.Writer, rooms []RoomStats, sum Summary) {
	fmt.Fprintln(w, "# Moderation report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| room | messages | flagged |")
	fmt.Fprintln(w, "|---|---:|---:|")
	for _, r := range rooms {
		fmt.Fprintf(w, "| %s | %d | %d |\n", r.Room, r.Messages, r.Flagged)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**%d** messages across **%d** rooms, **%d** flagged. Busiest room: `%s`.\n",
		sum.Messages, sum.Rooms, sum.Flagged, sum.Busiest)
}
