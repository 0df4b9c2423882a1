package workbook

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"paypulse/internal/errors"
)

// maxXLSRows caps how many rows are pulled out of a legacy .xls sheet
const maxXLSRows = 100000

// Read parses a spreadsheet payload into one Table per sheet, preserving
// row order. Supported formats: .xlsx, .xls, .csv (a CSV yields a single
// synthetic sheet). Sheets without a header row or data rows are omitted.
// An unparseable payload returns an UnreadableFile error; callers are
// expected to recover per file, not abort the batch.
func Read(fileName string, data []byte) ([]Table, error) {
	start := time.Now()

	var tables []Table
	var err error
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		tables, err = readCSV(fileName, data)
	case ".xls":
		tables, err = readXLS(data)
	default:
		tables, err = readXLSX(data)
	}
	if err != nil {
		return nil, errors.UnreadableFile(fileName, err)
	}

	log.Printf("[Workbook] %s read in %.2fms (%d sheets)",
		fileName, float64(time.Since(start).Nanoseconds())/1e6, len(tables))
	return tables, nil
}

func readXLSX(data []byte) ([]Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tables []Table
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		if table, ok := buildTable(sheetName, rows); ok {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

func readXLS(data []byte) ([]Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, io.ErrUnexpectedEOF
	}

	var tables []Table
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow) && r < maxXLSRows; r++ {
			row := sheet.Row(r)
			if row == nil {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol())
			for c := row.FirstCol(); c < row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		if table, ok := buildTable(sheet.Name, rows); ok {
			tables = append(tables, table)
		}
	}
	return tables, nil
}

func readCSV(fileName string, data []byte) ([]Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	sheetName := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	if table, ok := buildTable(sheetName, rows); ok {
		return []Table{table}, nil
	}
	return nil, nil
}

// buildTable converts raw string rows into a Table: first row becomes the
// trimmed headers, all-empty data rows are dropped. Returns ok=false when
// there is no header row or no surviving data row.
func buildTable(sheetName string, rows [][]string) (Table, bool) {
	if len(rows) < 2 {
		return Table{}, false
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []Row
	for i := 1; i < len(rows); i++ {
		rowData := make(Row)
		for j, cell := range rows[i] {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell != "" {
				rowData[headers[j]] = cell
			}
		}
		if len(rowData) > 0 {
			dataRows = append(dataRows, rowData)
		}
	}
	if len(dataRows) == 0 {
		return Table{}, false
	}

	log.Printf("[Workbook] sheet %s processed (%d columns, %d rows)",
		sheetName, len(headers), len(dataRows))

	return Table{
		SheetName: sheetName,
		Headers:   headers,
		Rows:      dataRows,
	}, true
}
