package store

import (
	"context"
	"errors"
	"testing"

	"paypulse/adapters/kv"
	"paypulse/domain/labor"
	apperrors "paypulse/internal/errors"
)

func payrollRecord(name, fileName string) labor.PayrollRecord {
	return labor.PayrollRecord{
		ID:           name + "-id",
		EmployeeName: name,
		BaseSalary:   3000000,
		TotalPayroll: 3000000,
		FileName:     fileName,
	}
}

func feeRecord(company, fileName string) labor.FeeRecord {
	return labor.FeeRecord{
		ID:          company + "-id",
		CompanyName: company,
		MonthlyFee:  1500000,
		TotalFee:    18000000,
		FileName:    fileName,
	}
}

// TestLoadEmpty tests that a fresh store yields an empty dataset, not
// an error or nil slices.
func TestLoadEmpty(t *testing.T) {
	s := New(kv.NewMemoryStore())

	dataset, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if dataset.PayrollData == nil || dataset.FeeData == nil {
		t.Error("empty dataset should have non-nil slices")
	}
	if !dataset.IsEmpty() {
		t.Error("fresh store should be empty")
	}

	history, err := s.History(context.Background())
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("fresh store history = %d entries", len(history))
	}
}

// TestAppendAccumulates tests that consecutive batches accumulate and
// that re-uploading the same file doubles its records.
func TestAppendAccumulates(t *testing.T) {
	s := New(kv.NewMemoryStore())
	ctx := context.Background()

	batch := []labor.PayrollRecord{payrollRecord("김철수", "a.xlsx")}
	if _, err := s.Append(ctx, batch, nil, nil); err != nil {
		t.Fatalf("first append failed: %v", err)
	}
	dataset, err := s.Append(ctx, batch, nil, nil)
	if err != nil {
		t.Fatalf("second append failed: %v", err)
	}

	if len(dataset.PayrollData) != 2 {
		t.Errorf("expected duplicated upload to yield 2 records, got %d", len(dataset.PayrollData))
	}
}

// TestAppendSurvivesReload tests persistence across store instances
// sharing one key-value backend.
func TestAppendSurvivesReload(t *testing.T) {
	backend := kv.NewMemoryStore()
	ctx := context.Background()

	first := New(backend)
	_, err := first.Append(ctx,
		[]labor.PayrollRecord{payrollRecord("김철수", "a.xlsx")},
		[]labor.FeeRecord{feeRecord("테크웍스", "b.xlsx")},
		[]labor.UploadHistoryEntry{{ID: "h1", FileName: "a.xlsx", FileType: labor.FileTypePayroll, RecordCount: 1}})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	second := New(backend)
	dataset, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(dataset.PayrollData) != 1 || len(dataset.FeeData) != 1 {
		t.Errorf("reloaded dataset holds %d payroll and %d fee records",
			len(dataset.PayrollData), len(dataset.FeeData))
	}
}

// TestRemoveByFileIsolation tests that removal touches only the named
// file's records of the named type.
func TestRemoveByFileIsolation(t *testing.T) {
	s := New(kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Append(ctx,
		[]labor.PayrollRecord{
			payrollRecord("김철수", "a.xlsx"),
			payrollRecord("이영희", "b.xlsx"),
		},
		[]labor.FeeRecord{feeRecord("테크웍스", "a.xlsx")},
		[]labor.UploadHistoryEntry{
			{ID: "h1", FileName: "a.xlsx", FileType: labor.FileTypePayroll, RecordCount: 1},
			{ID: "h2", FileName: "b.xlsx", FileType: labor.FileTypePayroll, RecordCount: 1},
			{ID: "h3", FileName: "a.xlsx", FileType: labor.FileTypeFee, RecordCount: 1},
		})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	dataset, err := s.RemoveByFile(ctx, "a.xlsx", labor.FileTypePayroll)
	if err != nil {
		t.Fatalf("RemoveByFile failed: %v", err)
	}

	if len(dataset.PayrollData) != 1 || dataset.PayrollData[0].FileName != "b.xlsx" {
		t.Errorf("payroll records after removal: %+v", dataset.PayrollData)
	}
	// The same file's fee records are a separate contribution.
	if len(dataset.FeeData) != 1 {
		t.Errorf("fee records should survive a payroll removal, got %d", len(dataset.FeeData))
	}

	history, _ := s.History(ctx)
	if len(history) != 2 {
		t.Fatalf("expected 2 surviving history entries, got %d", len(history))
	}
	for _, entry := range history {
		if entry.FileName == "a.xlsx" && entry.FileType == labor.FileTypePayroll {
			t.Error("removed file's history entry survived")
		}
	}
}

// TestRemoveByFileRejectsUnknownType tests input validation on the
// file type discriminator.
func TestRemoveByFileRejectsUnknownType(t *testing.T) {
	s := New(kv.NewMemoryStore())

	_, err := s.RemoveByFile(context.Background(), "a.xlsx", labor.FileType("spreadsheet"))
	if err == nil {
		t.Fatal("expected an error for an unknown file type")
	}
	if apperrors.GetCode(err) != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s", apperrors.GetCode(err))
	}
}

// brokenStore fails all writes but serves reads
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (brokenStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("write refused")
}
func (brokenStore) Remove(ctx context.Context, key string) error { return nil }

// TestAppendPropagatesWriteFailure tests that a failed persistence
// write reaches the caller as a typed error.
func TestAppendPropagatesWriteFailure(t *testing.T) {
	s := New(brokenStore{})

	_, err := s.Append(context.Background(),
		[]labor.PayrollRecord{payrollRecord("김철수", "a.xlsx")}, nil, nil)
	if err == nil {
		t.Fatal("expected a write failure")
	}
	if !apperrors.IsPersistenceWrite(err) {
		t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.CodePersistenceWrite)
	}
}
