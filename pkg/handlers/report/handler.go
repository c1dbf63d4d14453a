package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/fdd-atlas/pkg/export"
	"github.com/de-tools/fdd-atlas/pkg/models/api"
	"github.com/de-tools/fdd-atlas/pkg/models/domain"
	storemodels "github.com/de-tools/fdd-atlas/pkg/models/store"
	"github.com/de-tools/fdd-atlas/pkg/services/ledger"
	"github.com/de-tools/fdd-atlas/pkg/store/sqlite/history"
)

const maxUploadBytes = 32 << 20

// Generator runs the questionnaire pipeline over a parsed ledger.
type Generator interface {
	Generate(ctx context.Context, l domain.Ledger) (domain.QAReport, error)
}

type Handler struct {
	generator Generator
	history   history.Store
}

func NewHandler(generator Generator, history history.Store) *Handler {
	return &Handler{generator: generator, history: history}
}

// UploadDocument accepts a trial balance CSV, runs the pipeline and
// stores the run. The multipart field name is "file".
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	l, err := ledger.Read(file, header.Filename)
	if err != nil {
		logger.Warn().Err(err).Str("file", header.Filename).Msg("balance file rejected")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	qaReport, err := h.generator.Generate(ctx, l)
	if err != nil {
		logger.Error().Err(err).Msg("report generation failed")
		writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	reportJSON, err := json.Marshal(qaReport)
	if err != nil {
		logger.Error().Err(err).Msg("failed to serialize report")
		writeError(w, http.StatusInternalServerError, "failed to serialize report")
		return
	}

	counts := qaReport.CountByPriority()
	run := storemodels.ReportRun{
		ID:         uuid.NewString(),
		SourceFile: header.Filename,
		CreatedAt:  qaReport.GeneratedAt,
		TotalItems: len(qaReport.Items),
		AltaCount:  counts[domain.PriorityAlta],
		MediaCount: counts[domain.PriorityMedia],
		BajaCount:  counts[domain.PriorityBaja],
		ReportJSON: string(reportJSON),
	}
	if err := h.history.Add(ctx, run); err != nil {
		logger.Error().Err(err).Str("run_id", run.ID).Msg("failed to store report run")
		writeError(w, http.StatusInternalServerError, "failed to store report run")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.ReportRunFromStore(run)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report run")
	}
}

func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	runs, err := h.history.List(ctx, limit)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list report runs")
		writeError(w, http.StatusInternalServerError, "failed to list report runs")
		return
	}

	response := make([]api.ReportRun, 0, len(runs))
	for _, run := range runs {
		response = append(response, api.ReportRunFromStore(run))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report runs")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	run, err := h.history.Get(ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("run_id", id).Msg("failed to load report run")
		writeError(w, http.StatusInternalServerError, "failed to load report run")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(run.ReportJSON)); err != nil {
		logger.Error().Err(err).Str("run_id", id).Msg("failed to write report")
	}
}

func (h *Handler) GetReportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	run, err := h.history.Get(ctx, id)
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("run_id", id).Msg("failed to load report run")
		writeError(w, http.StatusInternalServerError, "failed to load report run")
		return
	}

	var qaReport domain.QAReport
	if err := json.Unmarshal([]byte(run.ReportJSON), &qaReport); err != nil {
		logger.Error().Err(err).Str("run_id", id).Msg("stored report is unreadable")
		writeError(w, http.StatusInternalServerError, "stored report is unreadable")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="qa_report.csv"`)
	if err := export.WriteCSV(w, qaReport); err != nil {
		logger.Error().Err(err).Str("run_id", id).Msg("failed to write report csv")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Message: message})
}
