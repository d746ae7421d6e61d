package study

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/handlers/respond"
	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/models/store"
	studysvc "github.com/boca-banker/boca-banker/pkg/services/study"
	studystore "github.com/boca-banker/boca-banker/pkg/store/duckdb/study"
)

type Handler struct {
	calculator studysvc.Calculator
	studies    studystore.Store
}

func NewHandler(calculator studysvc.Calculator, studies studystore.Store) *Handler {
	return &Handler{
		calculator: calculator,
		studies:    studies,
	}
}

func (h *Handler) CreateStudy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.StudyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not valid JSON")
		return
	}
	if msg := validateRequest(req); msg != "" {
		respond.Error(w, r, http.StatusBadRequest, "invalid_study", msg)
		return
	}

	report, err := h.calculator.Generate(adapters.MapStudyRequestApiToDomain(req))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "calculation_failed", err.Error())
		return
	}

	record, apiReport, err := buildRecord(uuid.NewString(), req, report)
	if err != nil {
		logger.Error().Err(err).Msg("failed to serialize study report")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to serialize study")
		return
	}
	if err := h.studies.Create(ctx, record); err != nil {
		logger.Error().Err(err).Msg("failed to persist study")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to persist study")
		return
	}

	respond.JSON(w, r, http.StatusCreated, api.Study{
		ID:        record.ID,
		Request:   req,
		Report:    apiReport,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	})
}

func (h *Handler) ListStudies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	rows, err := h.studies.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list studies")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to list studies")
		return
	}

	listings := make([]api.StudyListing, 0, len(rows))
	for _, row := range rows {
		listings = append(listings, adapters.MapStudySummaryStoreToApi(row))
	}
	respond.JSON(w, r, http.StatusOK, listings)
}

func (h *Handler) GetStudy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "studyID")

	record, err := h.studies.Get(ctx, id)
	if errors.Is(err, studystore.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, "not_found", fmt.Sprintf("study %s not found", id))
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("failed to load study")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to load study")
		return
	}

	study, err := mapRecordToStudy(record)
	if err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("stored study blob is unreadable")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "stored study is unreadable")
		return
	}
	respond.JSON(w, r, http.StatusOK, study)
}

// RecalculateStudy re-runs the engine over the stored inputs, optionally
// overriding the rates, and persists the fresh report.
func (h *Handler) RecalculateStudy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "studyID")

	// An empty body means "no overrides"; chunked requests carry no
	// Content-Length, so the decode is attempted unconditionally.
	var overrides api.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil && !errors.Is(err, io.EOF) {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not valid JSON")
		return
	}

	record, err := h.studies.Get(ctx, id)
	if errors.Is(err, studystore.ErrNotFound) {
		respond.Error(w, r, http.StatusNotFound, "not_found", fmt.Sprintf("study %s not found", id))
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("failed to load study")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to load study")
		return
	}

	req, err := mapRecordToRequest(record)
	if err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("stored study assets are unreadable")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "stored study is unreadable")
		return
	}
	if overrides.TaxRate != nil {
		req.TaxRate = *overrides.TaxRate
	}
	if overrides.DiscountRate != nil {
		req.DiscountRate = *overrides.DiscountRate
	}
	if overrides.BonusRate != nil {
		req.BonusRate = *overrides.BonusRate
	}
	if msg := validateRequest(req); msg != "" {
		respond.Error(w, r, http.StatusBadRequest, "invalid_study", msg)
		return
	}

	report, err := h.calculator.Generate(adapters.MapStudyRequestApiToDomain(req))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "calculation_failed", err.Error())
		return
	}

	updated, apiReport, err := buildRecord(record.ID, req, report)
	if err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("failed to serialize study report")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to serialize study")
		return
	}
	updated.CreatedAt = record.CreatedAt
	if err := h.studies.UpdateReport(ctx, updated); err != nil {
		logger.Error().Err(err).Str("study_id", id).Msg("failed to persist recalculated study")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to persist study")
		return
	}

	respond.JSON(w, r, http.StatusOK, api.Study{
		ID:        updated.ID,
		Request:   req,
		Report:    apiReport,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
	})
}

func validateRequest(req api.StudyRequest) string {
	if !domain.PropertyType(req.PropertyType).Known() {
		return fmt.Sprintf("unknown property type %q", req.PropertyType)
	}
	if req.BuildingValue <= 0 {
		return "buildingValue must be positive"
	}
	if len(req.Assets) == 0 {
		return "assets must not be empty"
	}
	if req.TaxRate < 0 || req.TaxRate > 100 {
		return "taxRate must be within 0-100"
	}
	if req.BonusRate < 0 || req.BonusRate > 100 {
		return "bonusRate must be within 0-100"
	}
	if req.DiscountRate < 0 {
		return "discountRate must be >= 0"
	}
	for _, asset := range req.Assets {
		period := domain.RecoveryPeriod(asset.RecoveryPeriod)
		if period != domain.PeriodLand && !period.Valid() {
			return fmt.Sprintf("asset %q has unsupported recovery period %v", asset.Category, asset.RecoveryPeriod)
		}
	}
	return ""
}

func buildRecord(id string, req api.StudyRequest, report *domain.StudyReport) (*store.StudyRecord, api.StudyReport, error) {
	apiReport := adapters.MapStudyReportDomainToApi(report)

	assetsJSON, err := json.Marshal(req.Assets)
	if err != nil {
		return nil, api.StudyReport{}, fmt.Errorf("marshal assets: %w", err)
	}
	reportJSON, err := json.Marshal(apiReport)
	if err != nil {
		return nil, api.StudyReport{}, fmt.Errorf("marshal report: %w", err)
	}

	now := time.Now().UTC()
	return &store.StudyRecord{
		ID:              id,
		PropertyAddress: req.PropertyAddress,
		PropertyType:    req.PropertyType,
		PurchasePrice:   req.PurchasePrice,
		BuildingValue:   req.BuildingValue,
		LandValue:       req.LandValue,
		StudyYear:       req.StudyYear,
		TaxRate:         req.TaxRate,
		DiscountRate:    req.DiscountRate,
		BonusRate:       req.BonusRate,
		Assets:          assetsJSON,
		Report:          reportJSON,

		TotalFirstYearDeduction: apiReport.Summary.TotalFirstYearDeduction,
		TotalTaxSavings:         apiReport.Summary.TotalTaxSavings,
		NPVTaxSavings:           apiReport.Summary.NPVTaxSavings,

		CreatedAt: now,
		UpdatedAt: now,
	}, apiReport, nil
}

func mapRecordToRequest(record *store.StudyRecord) (api.StudyRequest, error) {
	var assets []api.StudyAsset
	if err := json.Unmarshal(record.Assets, &assets); err != nil {
		return api.StudyRequest{}, fmt.Errorf("unmarshal assets: %w", err)
	}
	return api.StudyRequest{
		PropertyAddress: record.PropertyAddress,
		PropertyType:    record.PropertyType,
		PurchasePrice:   record.PurchasePrice,
		BuildingValue:   record.BuildingValue,
		LandValue:       record.LandValue,
		StudyYear:       record.StudyYear,
		TaxRate:         record.TaxRate,
		DiscountRate:    record.DiscountRate,
		BonusRate:       record.BonusRate,
		Assets:          assets,
	}, nil
}

func mapRecordToStudy(record *store.StudyRecord) (api.Study, error) {
	req, err := mapRecordToRequest(record)
	if err != nil {
		return api.Study{}, err
	}
	var report api.StudyReport
	if err := json.Unmarshal(record.Report, &report); err != nil {
		return api.Study{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return api.Study{
		ID:        record.ID,
		Request:   req,
		Report:    report,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
