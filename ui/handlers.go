package ui

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"paypulse/app/analytics"
	"paypulse/app/calculator"
	"paypulse/app/ingest"
	"paypulse/app/settings"
	"paypulse/domain/labor"
	apperrors "paypulse/internal/errors"
)

const maxUploadBytes = 64 << 20

// handleUpload accepts one or more spreadsheet files as multipart form
// data under the "files" field and ingests them as a single batch.
func (a *App) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, apperrors.InvalidInput("expected multipart form data"))
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, apperrors.InvalidInput("no files provided"))
		return
	}

	files := make([]ingest.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			writeError(w, apperrors.Wrapf(err, "failed to open %s", header.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			writeError(w, apperrors.Wrapf(err, "failed to read %s", header.Filename))
			return
		}
		files = append(files, ingest.UploadFile{Name: header.Filename, Data: data})
	}

	summary, err := a.ingest.UploadFiles(r.Context(), files)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *App) handleDataset(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.ingest.Dataset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

// handleDeleteFile removes all records ingested from one file, scoped
// to a single record type so mixed workbooks shed one side at a time.
func (a *App) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	fileName := r.URL.Query().Get("file")
	fileType := labor.FileType(r.URL.Query().Get("type"))
	if fileName == "" {
		writeError(w, apperrors.InvalidInput("file query parameter is required"))
		return
	}
	if fileType != labor.FileTypePayroll && fileType != labor.FileTypeFee {
		writeError(w, apperrors.InvalidInput("type must be payroll or fee"))
		return
	}

	dataset, err := a.ingest.DeleteFile(r.Context(), fileName, fileType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dataset)
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := a.ingest.History(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []labor.UploadHistoryEntry{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (a *App) handleAggregates(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.ingest.Dataset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.Compute(dataset))
}

// handleSalary applies the query-parameter filters and returns the
// filtered records alongside aggregates recomputed over the subset.
func (a *App) handleSalary(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	dataset, err := a.ingest.Dataset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	filtered := analytics.ApplyFilters(dataset, filter)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"payroll_data": filtered.PayrollData,
		"fee_data":     filtered.FeeData,
		"aggregates":   analytics.Compute(filtered),
	})
}

func filterFromQuery(r *http.Request) (analytics.SalaryFilter, error) {
	q := r.URL.Query()
	filter := analytics.SalaryFilter{
		EmployeeName: q.Get("name"),
		Department:   q.Get("department"),
		Position:     q.Get("position"),
	}

	var err error
	if filter.MinSalary, err = parseOptionalInt(q.Get("min_salary")); err != nil {
		return analytics.SalaryFilter{}, apperrors.InvalidInput("min_salary must be an integer")
	}
	if filter.MaxSalary, err = parseOptionalInt(q.Get("max_salary")); err != nil {
		return analytics.SalaryFilter{}, apperrors.InvalidInput("max_salary must be an integer")
	}
	return filter, nil
}

func parseOptionalInt(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeError(w, apperrors.InvalidInput("message is required"))
		return
	}

	answer, err := a.chat.Answer(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}

// handleInsurance computes premiums with the stored rates, so a saved
// rate change is immediately reflected.
func (a *App) handleInsurance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BaseSalary int64 `json:"base_salary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BaseSalary <= 0 {
		writeError(w, apperrors.InvalidInput("base_salary must be a positive integer"))
		return
	}

	stored, err := a.settings.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calculator.Insurance(req.BaseSalary, stored.InsuranceRates))
}

func (a *App) handleROI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Revenue   int64  `json:"revenue"`
		TotalCost *int64 `json:"total_cost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}

	totalCost := int64(0)
	if req.TotalCost != nil {
		totalCost = *req.TotalCost
	} else {
		dataset, err := a.ingest.Dataset(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		totalCost = analytics.Compute(dataset).TotalLaborCost
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"revenue":    req.Revenue,
		"total_cost": totalCost,
		"roi":        calculator.ROI(req.Revenue, totalCost),
	})
}

func (a *App) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	stored, err := a.settings.Load(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (a *App) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var body settings.Settings
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, apperrors.InvalidInput("invalid settings body"))
		return
	}
	if err := a.settings.Save(r.Context(), body); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (a *App) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	entries, err := a.settings.Notifications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []settings.Notification{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *App) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title"`
		Message string `json:"message"`
		Level   string `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, apperrors.InvalidInput("title is required"))
		return
	}
	if req.Level == "" {
		req.Level = "info"
	}

	entry, err := a.settings.Notify(r.Context(), req.Title, req.Message, req.Level)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (a *App) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.settings.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (a *App) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.settings.DeleteNotification(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	dataset, err := a.ingest.Dataset(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	path, err := a.report.Summary(analytics.Compute(dataset), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"path": path})
}
