// Package review generates the two-column review workbook from a
// consolidated skill list.
package review

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/models"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/tokenizer"
)

const (
	// SheetName is the name of the single sheet in the review workbook.
	SheetName = "Skills Review"
	// HeaderSkill is the label of the skill column.
	HeaderSkill = "Skill"
	// HeaderMark is the label of the mark column.
	HeaderMark = "Have skill? (Mark X or YES)"
	// Mark is the literal written for pre-known skills.
	Mark = "Yes"

	tableName = "SkillsTable"
)

// Style configures the presentation of the review workbook.
type Style struct {
	// TableStyle is the built-in Excel table style name.
	TableStyle string
	// ShowRowStripes enables alternating row shading.
	ShowRowStripes bool
	// ShowColumnStripes enables alternating column shading.
	ShowColumnStripes bool
	// SkillColWidth is the width of the skill column.
	SkillColWidth float64
	// MarkColWidth is the width of the mark column.
	MarkColWidth float64
}

// DefaultStyle returns the default review workbook presentation.
func DefaultStyle() Style {
	return Style{
		TableStyle:     "TableStyleMedium9",
		ShowRowStripes: true,
		SkillColWidth:  45,
		MarkColWidth:   30,
	}
}

// Rows pairs each skill with its mark. Skills in the known set that are
// absent from skills are never rendered; that is intentional, not an
// error.
func Rows(skills []string, known tokenizer.KnownSet) []models.ReviewRow {
	rows := make([]models.ReviewRow, 0, len(skills))
	for _, skill := range skills {
		row := models.ReviewRow{Skill: skill}
		if known.Contains(skill) {
			row.Mark = Mark
		}
		rows = append(rows, row)
	}
	return rows
}

// Build writes the review workbook to dest. The skills slice must
// already be deduplicated and sorted; rows are written in the given
// order below a single header row. The written document has exactly
// len(skills)+1 rows.
func Build(skills []string, known tokenizer.KnownSet, dest string, style Style) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetCellValue(SheetName, "A1", HeaderSkill); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellValue(SheetName, "B1", HeaderMark); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range Rows(skills, known) {
		rowNum := i + 2 // data starts below the header
		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", rowNum), row.Skill); err != nil {
			return fmt.Errorf("write row %d: %w", rowNum, err)
		}
		if row.Mark != "" {
			if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", rowNum), row.Mark); err != nil {
				return fmt.Errorf("write row %d: %w", rowNum, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", style.SkillColWidth); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "B", style.MarkColWidth); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	// Keep the header row visible under scrolling.
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header row: %w", err)
	}

	// A table range needs at least one data row below the header, so an
	// empty skill list produces a plain header-only sheet.
	if len(skills) > 0 {
		endRow := len(skills) + 1
		showRowStripes := style.ShowRowStripes
		if err := f.AddTable(SheetName, &excelize.Table{
			Range:             fmt.Sprintf("A1:B%d", endRow),
			Name:              tableName,
			StyleName:         style.TableStyle,
			ShowRowStripes:    &showRowStripes,
			ShowColumnStripes: style.ShowColumnStripes,
		}); err != nil {
			return fmt.Errorf("add table: %w", err)
		}
	}

	if err := f.SaveAs(dest); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	return nil
}

// WriteError indicates the review workbook could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write review workbook %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
