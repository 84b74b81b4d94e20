package sheet

import "strings"

// Header aliases, lower-cased.
var (
	productAliases  = []string{"produto", "product"}
	branchAliases   = []string{"filial", "branch"}
	quantityAliases = []string{"qtd", "qty", "quantidade", "quantity"}
)

// header locates the required columns of a sheet.
type header struct {
	file    string
	row     int
	indices map[string]int
}

func newHeader(file string, row int, cells []string) header {
	indices := make(map[string]int, len(cells))
	for i, cell := range cells {
		name := normalize(cell)
		if name == "" {
			continue
		}
		if _, dup := indices[name]; !dup {
			indices[name] = i
		}
	}
	return header{file: file, row: row, indices: indices}
}

// find returns the index of the first alias present in the header.
func (h header) find(column string, aliases []string) (int, error) {
	for _, alias := range aliases {
		if i, ok := h.indices[alias]; ok {
			return i, nil
		}
	}
	return 0, &FormatError{
		File:   h.file,
		Row:    h.row,
		Column: column,
		Reason: "missing column",
	}
}

func normalize(cell string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
}

// cell returns the trimmed value at index i, or "" for short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
