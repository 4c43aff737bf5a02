package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"asset-prep/internal/catalog"
	"asset-prep/internal/thumbs"
)

func renderCatalogSummary(m *catalog.Manifest) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Asset", "Category", "Size", "Resolution"})

	for _, a := range m.Images {
		res := "-"
		if a.Resolution != nil {
			res = fmt.Sprintf("%dx%d", a.Resolution.Width, a.Resolution.Height)
		}
		tw.AppendRow(table.Row{a.Filename, a.Category, a.FileSizeFormatted, res})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d images", m.TotalImages), "", m.TotalSizeFormatted, ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderThumbsSummary(s thumbs.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Count"})

	rows := []struct {
		label string
		count int
	}{
		{"Decoded", s.Decoded},
		{"Tool converted", s.ToolConverted},
		{"Placeholder", s.Placeholder},
		{"Skipped (exists)", s.Skipped},
		{"Failed", s.Failed},
	}
	for _, r := range rows {
		tw.AppendRow(table.Row{r.label, strconv.Itoa(r.count)})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(s.Total())})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
