// Package sheet converts uploaded spreadsheets into reconcile records and
// report tables back into workbooks.
//
// Workbooks (.xlsx, .xlsm) are handled by excelize; comma or semicolon
// separated files (.csv) by encoding/csv. Only the first worksheet of a
// workbook is read and its first non-empty row is the header.
//
// # Expected Columns
//
//   - Inventory: Produto, Filial, Qtd
//   - Orders: Produto, Qtd
//
// Headers are matched case-insensitively and the English names Product,
// Branch and Qty/Quantity are accepted as well. Extra columns are ignored.
//
// # Errors
//
// Every shape problem (unsupported extension, missing column, bad quantity)
// is returned as a *FormatError wrapping ErrInvalidFormat, so callers can
// answer with a single "invalid file format" message.
//
// # Usage
//
//	records, err := sheet.ReadInventory(file.Filename, reader)
//	if errors.Is(err, sheet.ErrInvalidFormat) {
//	    // tell the user which column or row is wrong
//	}
//
//	err = sheet.WriteTable(w, table)
package sheet
