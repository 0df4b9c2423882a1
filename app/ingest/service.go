package ingest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"paypulse/adapters/workbook"
	"paypulse/app/store"
	"paypulse/domain/labor"
)

// parseParallelism bounds concurrent workbook parsing within one batch
const parseParallelism = 4

// UploadFile is one file of an upload batch
type UploadFile struct {
	Name string
	Data []byte
}

// Service runs the ingestion pipeline: read workbook, classify each sheet,
// normalize, validate, merge into the dataset store. Parsing and
// normalization are pure per file and fan out across a bounded errgroup;
// the merge itself happens once, in input order, through the store's
// single writer. One unreadable file is reported in the batch summary
// without aborting the others; a failed persistence write aborts the
// whole batch and is returned to the caller.
type Service struct {
	store *store.DatasetStore
	now   func() time.Time
}

// NewService creates the ingestion service over a dataset store
func NewService(datasetStore *store.DatasetStore) *Service {
	return &Service{store: datasetStore, now: time.Now}
}

type fileResult struct {
	summary labor.FileSummary
	payroll []labor.PayrollRecord
	fee     []labor.FeeRecord
	entries []labor.UploadHistoryEntry
}

// UploadFiles ingests a batch of spreadsheet files and appends the
// accepted records to the dataset. The returned summary itemizes raw,
// accepted and dropped row counts per file plus any skipped sheets.
func (s *Service) UploadFiles(ctx context.Context, files []UploadFile) (labor.BatchSummary, error) {
	uploadDate := s.now()
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parseParallelism)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.processFile(file, uploadDate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return labor.BatchSummary{}, err
	}

	summary := labor.BatchSummary{Files: make([]labor.FileSummary, 0, len(files))}
	var allPayroll []labor.PayrollRecord
	var allFee []labor.FeeRecord
	var allEntries []labor.UploadHistoryEntry
	for _, r := range results {
		summary.Files = append(summary.Files, r.summary)
		summary.AddedPayroll += len(r.payroll)
		summary.AddedFee += len(r.fee)
		allPayroll = append(allPayroll, r.payroll...)
		allFee = append(allFee, r.fee...)
		allEntries = append(allEntries, r.entries...)
	}

	if len(allPayroll) > 0 || len(allFee) > 0 {
		if _, err := s.store.Append(ctx, allPayroll, allFee, allEntries); err != nil {
			return labor.BatchSummary{}, err
		}
	}

	log.Printf("[Ingest] batch done: %d payroll + %d fee records accepted from %d files",
		summary.AddedPayroll, summary.AddedFee, len(files))
	return summary, nil
}

// processFile runs the per-file pipeline stages. All failure modes end up
// in the file's summary; nothing here can fail the batch.
func (s *Service) processFile(file UploadFile, uploadDate time.Time) fileResult {
	result := fileResult{summary: labor.FileSummary{FileName: file.Name}}

	tables, err := workbook.Read(file.Name, file.Data)
	if err != nil {
		log.Printf("[Ingest] %s unreadable: %v", file.Name, err)
		result.summary.Error = err.Error()
		return result
	}

	for _, table := range tables {
		result.summary.RawRows += table.RowCount()

		switch Classify(file.Name, table) {
		case ClassPayroll:
			records, dropped := FilterPayroll(NormalizePayroll(table, file.Name, uploadDate))
			result.payroll = append(result.payroll, records...)
			result.summary.Dropped += dropped
		case ClassFee:
			records, dropped := FilterFee(NormalizeFee(table, file.Name, uploadDate))
			result.fee = append(result.fee, records...)
			result.summary.Dropped += dropped
		default:
			log.Printf("[Ingest] %s/%s matched neither category, skipping sheet",
				file.Name, table.SheetName)
			result.summary.SkippedSheets = append(result.summary.SkippedSheets, table.SheetName)
		}
	}

	result.summary.Accepted = len(result.payroll) + len(result.fee)

	// One history entry per record type the file contributed, so removal
	// by (fileName, fileType) stays exact even for mixed workbooks.
	if len(result.payroll) > 0 {
		result.summary.FileType = labor.FileTypePayroll
		result.entries = append(result.entries, labor.UploadHistoryEntry{
			ID:          uuid.NewString(),
			FileName:    file.Name,
			FileType:    labor.FileTypePayroll,
			UploadDate:  uploadDate,
			RecordCount: len(result.payroll),
		})
	}
	if len(result.fee) > 0 {
		if result.summary.FileType == "" {
			result.summary.FileType = labor.FileTypeFee
		}
		result.entries = append(result.entries, labor.UploadHistoryEntry{
			ID:          uuid.NewString(),
			FileName:    file.Name,
			FileType:    labor.FileTypeFee,
			UploadDate:  uploadDate,
			RecordCount: len(result.fee),
		})
	}
	return result
}

// DeleteFile removes one uploaded file's contribution from the dataset
func (s *Service) DeleteFile(ctx context.Context, fileName string, fileType labor.FileType) (labor.Dataset, error) {
	return s.store.RemoveByFile(ctx, fileName, fileType)
}

// Dataset returns the current merged dataset
func (s *Service) Dataset(ctx context.Context) (labor.Dataset, error) {
	return s.store.Load(ctx)
}

// History returns the upload history entries
func (s *Service) History(ctx context.Context) ([]labor.UploadHistoryEntry, error) {
	return s.store.History(ctx)
}
