package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ribeirowl/processador-giga/core/reconcile"

	"github.com/xuri/excelize/v2"
)

// ReadInventory decodes an inventory spreadsheet.
// name is the original file name and selects the decoder by extension.
func ReadInventory(name string, r io.Reader) ([]reconcile.InventoryRecord, error) {
	rows, headerRow, err := readSheet(name, r)
	if err != nil {
		return nil, err
	}

	h := newHeader(name, headerRow+1, rows[headerRow])
	productCol, err := h.find(reconcile.ColumnProduct, productAliases)
	if err != nil {
		return nil, err
	}
	branchCol, err := h.find(reconcile.ColumnBranch, branchAliases)
	if err != nil {
		return nil, err
	}
	qtyCol, err := h.find(reconcile.ColumnQuantity, quantityAliases)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.InventoryRecord, 0, len(rows)-headerRow-1)
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		qty, err := parseQuantity(cell(row, qtyCol))
		if err != nil {
			return nil, &FormatError{File: name, Row: i + 1, Column: reconcile.ColumnQuantity, Reason: "invalid quantity", Err: err}
		}
		records = append(records, reconcile.InventoryRecord{
			Product:  cell(row, productCol),
			Branch:   cell(row, branchCol),
			StockQty: qty,
		})
	}

	return records, nil
}

// ReadOrders decodes an orders spreadsheet.
func ReadOrders(name string, r io.Reader) ([]reconcile.OrderRecord, error) {
	rows, headerRow, err := readSheet(name, r)
	if err != nil {
		return nil, err
	}

	h := newHeader(name, headerRow+1, rows[headerRow])
	productCol, err := h.find(reconcile.ColumnProduct, productAliases)
	if err != nil {
		return nil, err
	}
	qtyCol, err := h.find(reconcile.ColumnQuantity, quantityAliases)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.OrderRecord, 0, len(rows)-headerRow-1)
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		qty, err := parseQuantity(cell(row, qtyCol))
		if err != nil {
			return nil, &FormatError{File: name, Row: i + 1, Column: reconcile.ColumnQuantity, Reason: "invalid quantity", Err: err}
		}
		records = append(records, reconcile.OrderRecord{
			Product:    cell(row, productCol),
			OrderedQty: qty,
		})
	}

	return records, nil
}

// ReadTable decodes a workbook written by WriteTable.
// Quantity columns are returned as int, every other cell as string.
func ReadTable(r io.Reader) (reconcile.Table, error) {
	sheetName, rows, err := readWorkbook(r)
	if err != nil {
		return reconcile.Table{}, &FormatError{Reason: "unreadable workbook", Err: err}
	}
	if len(rows) == 0 {
		return reconcile.Table{}, &FormatError{Reason: "empty sheet"}
	}

	table := reconcile.Table{
		Name:    reconcile.ReportKey(strings.ToLower(sheetName)),
		Columns: rows[0],
		Rows:    make([][]any, 0, len(rows)-1),
	}

	for i, row := range rows[1:] {
		out := make([]any, len(table.Columns))
		for j, column := range table.Columns {
			value := cell(row, j)
			if column == reconcile.ColumnQuantity || column == reconcile.ColumnShortfall {
				qty, err := parseQuantity(value)
				if err != nil {
					return reconcile.Table{}, &FormatError{Row: i + 2, Column: column, Reason: "invalid quantity", Err: err}
				}
				out[j] = qty
				continue
			}
			out[j] = value
		}
		table.Rows = append(table.Rows, out)
	}

	return table, nil
}

// readSheet returns the rows of the first sheet and the index of the header.
func readSheet(name string, r io.Reader) ([][]string, int, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		_, rows, err = readWorkbook(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, 0, &FormatError{File: name, Reason: fmt.Sprintf("unsupported file type %q", ext)}
	}
	if err != nil {
		return nil, 0, &FormatError{File: name, Reason: "unreadable file", Err: err}
	}

	for i, row := range rows {
		if !isBlank(row) {
			return rows, i, nil
		}
	}
	return nil, 0, &FormatError{File: name, Reason: "no header row"}
}

func readWorkbook(r io.Reader) (string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", nil, err
	}
	return sheets[0], rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// detectDelimiter picks ';' when the first line has more semicolons than
// commas, which is what spreadsheet tools emit in pt-BR locales.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}
