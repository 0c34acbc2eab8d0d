package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// =============================================================================
// Summary
// =============================================================================

// scanStats counts how much metadata a scan recovered.
type scanStats struct {
	Files        int
	WithDate     int
	WithMake     int
	WithModel    int
	WithSoftware int
	NoMetadata   int
}

// collectStats tallies records.
func collectStats(records []ImageRecord) scanStats {
	var s scanStats
	for _, r := range records {
		s.Files++
		if r.DateTaken != "" {
			s.WithDate++
		}
		if r.CameraMake != "" {
			s.WithMake++
		}
		if r.CameraModel != "" {
			s.WithModel++
		}
		if r.Software != "" {
			s.WithSoftware++
		}
		if r.DateTaken == "" && r.CameraMake == "" && r.CameraModel == "" && r.Software == "" {
			s.NoMetadata++
		}
	}
	return s
}

// renderSummary formats stats as a two-column table.
func renderSummary(s scanStats, colorize bool) string {
	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	tw.AppendHeader(table.Row{"Metadata", "Files"})
	tw.AppendRows([]table.Row{
		{"Images scanned", s.Files},
		{"With capture date", s.WithDate},
		{"With camera make", s.WithMake},
		{"With camera model", s.WithModel},
		{"With software", s.WithSoftware},
		{"Without metadata", s.NoMetadata},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})

	return tw.Render()
}

// printSummary writes the summary table for records to w.
func printSummary(w io.Writer, records []ImageRecord) {
	fmt.Fprintln(w, renderSummary(collectStats(records), shouldColorize(w)))
}

// shouldColorize reports whether w is a terminal.
func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
