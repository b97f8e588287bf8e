package skillsheet

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/message"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/models"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/parser"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/review"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/tokenizer"
)

// Process reads the workbook at path, consolidates its skill tokens,
// and writes the review workbook. The consolidated list covers every
// cell of the selected sheet, or of all sheets when opts.Sheet is
// empty; the known set always comes from the first column of the
// selected (or first) sheet.
func Process(path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidWorkbook)
	}

	scanSheets := sheetList
	knownSheet := sheetList[0]
	if opts.Sheet != "" {
		if !sheetExists(sheetList, opts.Sheet) {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, opts.Sheet)
		}
		scanSheets = []string{opts.Sheet}
		knownSheet = opts.Sheet
	}

	var raw []string
	for _, sheetName := range scanSheets {
		cols, err := parser.ColumnValues(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		for _, col := range cols {
			raw = append(raw, tokenizer.Flatten(col)...)
		}
	}
	skills := tokenizer.Consolidate(raw)

	firstCol, err := parser.FirstColumnValues(f, knownSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", knownSheet, err)
	}
	known := tokenizer.NewKnownSet(tokenizer.Flatten(firstCol))

	outputPath := opts.OutputPath(path)
	if err := review.Build(skills, known, outputPath, opts.Style); err != nil {
		return nil, err
	}

	client := opts.Client
	if client == "" {
		client = DefaultClient
	}
	sender := opts.Sender
	if sender == "" {
		sender = DefaultSender
	}
	msg := message.Compose(client, sender)

	return &models.Result{
		OutputFile:  outputPath,
		SkillCount:  len(skills),
		KnownCount:  known.Len(),
		Message:     message.Plain(msg),
		MessageHTML: message.HTML(msg),
	}, nil
}

func sheetExists(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
