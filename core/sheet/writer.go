package sheet

import (
	"fmt"
	"io"

	"github.com/ribeirowl/processador-giga/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the workbooks produced by WriteTable.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const defaultSheet = "Sheet1"

// WriteTable writes table as a single-sheet workbook.
// The sheet is named after the report (e.g. "Compras") and starts with the
// header row; no index column is added.
func WriteTable(w io.Writer, table reconcile.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	name := table.Name.Title()
	if name == "" {
		name = defaultSheet
	}
	if name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	header := table.Columns
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(name, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range table.Rows {
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(name, addr, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
