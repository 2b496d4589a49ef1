package registration

import (
	"bytes"
	"encoding/json"
	"fmt"

	"jaz-events-api/internal/formschema"

	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders every registration for a target as one spreadsheet
// sheet: fixed metadata columns, then one column per schema field with its
// resolved label as header.
func (s *RegistrationService) ExportXLSX(kind string, targetID int64, schema formschema.Schema, locale string) ([]byte, error) {
	regs, err := s.ListByTarget(kind, targetID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	sheet := f.GetSheetName(0)
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := []interface{}{
		excelize.Cell{Value: "id", StyleID: headerStyle},
		excelize.Cell{Value: "status", StyleID: headerStyle},
		excelize.Cell{Value: "category", StyleID: headerStyle},
		excelize.Cell{Value: "submitter_id", StyleID: headerStyle},
		excelize.Cell{Value: "created_at", StyleID: headerStyle},
	}
	for _, fd := range schema {
		label := fd.Label(locale)
		if label == "" {
			label = fd.ID
		}
		header = append(header, excelize.Cell{Value: label, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	rowNum := 2
	for _, reg := range regs {
		var answers map[string]string
		if len(reg.Answers) > 0 {
			if err := json.Unmarshal(reg.Answers, &answers); err != nil {
				return nil, fmt.Errorf("registration %d has unreadable answers: %w", reg.ID, err)
			}
		}

		submitter := ""
		if reg.SubmitterID != nil {
			submitter = fmt.Sprintf("%d", *reg.SubmitterID)
		}

		values := []interface{}{
			reg.ID,
			reg.Status,
			reg.Category,
			submitter,
			reg.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for _, fd := range schema {
			values = append(values, answers[fd.ID])
		}

		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
		rowNum++
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
