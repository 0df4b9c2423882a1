package workbook

// Row is one data row keyed by trimmed header name. Cells are kept as the
// strings the underlying parser produced; numeric coercion happens later.
type Row map[string]string

// Table is the ordered contents of one sheet: the first row as headers,
// every following non-empty row as data.
type Table struct {
	SheetName string
	Headers   []string
	Rows      []Row
}

// RowCount returns the number of data rows in the table
func (t Table) RowCount() int {
	return len(t.Rows)
}
