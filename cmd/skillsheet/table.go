package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/models"
)

// renderSummary formats the processing result as a small console table.
func renderSummary(result *models.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Review workbook", "Skills", "Pre-marked"})
	tw.AppendRow(table.Row{
		result.OutputFile,
		strconv.Itoa(result.SkillCount),
		strconv.Itoa(result.KnownCount),
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
