package labor

// Dataset is the full collection of payroll and fee records across all
// uploaded files. It is persisted as a whole under a single storage key.
type Dataset struct {
	PayrollData []PayrollRecord `json:"payroll_data"`
	FeeData     []FeeRecord     `json:"fee_data"`
}

// EmptyDataset returns a dataset with non-nil, empty record slices
func EmptyDataset() Dataset {
	return Dataset{
		PayrollData: []PayrollRecord{},
		FeeData:     []FeeRecord{},
	}
}

// IsEmpty reports whether the dataset holds no records at all
func (d Dataset) IsEmpty() bool {
	return len(d.PayrollData) == 0 && len(d.FeeData) == 0
}

// RecordCount returns the total number of records of both shapes
func (d Dataset) RecordCount() int {
	return len(d.PayrollData) + len(d.FeeData)
}

// BatchSummary reports what an upload batch did, itemized by file.
// Unreadable files and unclassifiable sheets are reported here rather
// than aborting the batch.
type BatchSummary struct {
	AddedPayroll int           `json:"added_payroll"`
	AddedFee     int           `json:"added_fee"`
	Files        []FileSummary `json:"files"`
}

// FileSummary is the per-file slice of a BatchSummary.
type FileSummary struct {
	FileName      string   `json:"file_name"`
	FileType      FileType `json:"file_type,omitempty"`
	RawRows       int      `json:"raw_rows"`
	Accepted      int      `json:"accepted"`
	Dropped       int      `json:"dropped"`
	SkippedSheets []string `json:"skipped_sheets,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Skipped lists the names of files that contributed no records, either
// because they were unreadable or because no sheet could be classified.
func (s BatchSummary) Skipped() []string {
	var skipped []string
	for _, f := range s.Files {
		if f.Accepted == 0 {
			skipped = append(skipped, f.FileName)
		}
	}
	return skipped
}
