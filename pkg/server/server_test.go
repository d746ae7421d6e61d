package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/models/store"
	studystore "github.com/boca-banker/boca-banker/pkg/store/duckdb/study"
)

type mockCalculator struct {
	mock.Mock
}

func (m *mockCalculator) Generate(input domain.StudyInput) (*domain.StudyReport, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyReport), args.Error(1)
}

type mockStudyStore struct {
	mock.Mock
}

func (m *mockStudyStore) Create(ctx context.Context, record *store.StudyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockStudyStore) Get(ctx context.Context, id string) (*store.StudyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.StudyRecord), args.Error(1)
}

func (m *mockStudyStore) List(ctx context.Context) ([]store.StudySummaryRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.StudySummaryRow), args.Error(1)
}

func (m *mockStudyStore) UpdateReport(ctx context.Context, record *store.StudyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type mockLeadStore struct {
	mock.Mock
}

func (m *mockLeadStore) Add(ctx context.Context, records []store.LeadRecord) (int, error) {
	args := m.Called(ctx, records)
	return args.Int(0), args.Error(1)
}

func (m *mockLeadStore) List(ctx context.Context, county string) ([]store.LeadRecord, error) {
	args := m.Called(ctx, county)
	return args.Get(0).([]store.LeadRecord), args.Error(1)
}

func validStudyRequest() api.StudyRequest {
	return api.StudyRequest{
		PropertyAddress: "150 E Boca Raton Rd",
		PropertyType:    "commercial",
		PurchasePrice:   2_500_000,
		BuildingValue:   2_000_000,
		LandValue:       500_000,
		StudyYear:       2025,
		TaxRate:         37,
		DiscountRate:    8,
		BonusRate:       100,
		Assets: []api.StudyAsset{
			{Category: "5-Year Personal Property", CostBasis: 240_000, RecoveryPeriod: 5},
			{Category: "Building (39-Year)", CostBasis: 1_760_000, RecoveryPeriod: 39},
		},
	}
}

func TestWebAPI_CalculatorEndpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Logger: logger,
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	t.Run("Depreciation", func(t *testing.T) {
		body := api.DepreciationRequest{CostBasis: 500_000, RecoveryPeriod: 5, BonusRate: 0}
		resp := postJSON(t, testServer.URL+"/api/v1/calculators/depreciation", body)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[api.DepreciationResponse](t, resp.Body)
		require.Len(t, result.Schedule, 6)
		assert.Equal(t, 100_000.0, result.Schedule[0].Depreciation)
		assert.Equal(t, 0.0, result.Schedule[5].RemainingBasis)
	})

	t.Run("Depreciation_InvalidPeriod", func(t *testing.T) {
		body := api.DepreciationRequest{CostBasis: 500_000, RecoveryPeriod: 10}
		resp := postJSON(t, testServer.URL+"/api/v1/calculators/depreciation", body)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid_recovery_period", decode[api.Error](t, resp.Body).Code)
	})

	t.Run("Bonus", func(t *testing.T) {
		body := api.BonusRequest{Amount: 100_000, RecoveryPeriod: 5, BonusRate: 60}
		resp := postJSON(t, testServer.URL+"/api/v1/calculators/bonus", body)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[api.BonusResponse](t, resp.Body)
		assert.Equal(t, 60_000.0, result.BonusAmount)
		assert.Equal(t, 68_000.0, result.FirstYearTotal)
	})

	t.Run("NPV", func(t *testing.T) {
		body := api.NPVRequest{CashFlows: []float64{1_000, 1_000}, DiscountRate: 0}
		resp := postJSON(t, testServer.URL+"/api/v1/calculators/npv", body)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2_000.0, decode[api.NPVResponse](t, resp.Body).NPV)
	})

	t.Run("Allocation", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/allocations/commercial?buildingValue=2000000")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[api.AllocationResponse](t, resp.Body)
		assert.Equal(t, "commercial", result.PropertyType)
		require.Len(t, result.Items, 5)
		assert.Equal(t, 240_000.0, result.Items[1].Amount)

		total := 0.0
		for _, item := range result.Items {
			total += item.Amount
		}
		assert.InDelta(t, 2_000_000, total, 0.01)
	})

	t.Run("Allocation_UnknownType", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/allocations/castle?buildingValue=2000000")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "unknown_property_type", decode[api.Error](t, resp.Body).Code)
	})

	t.Run("Allocation_MissingBuildingValue", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/allocations/commercial")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid_building_value", decode[api.Error](t, resp.Body).Code)
	})
}

func TestWebAPI_StudyEndpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockCalc := new(mockCalculator)
	mockStudies := new(mockStudyStore)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Calculator: mockCalc,
			Studies:    mockStudies,
			Logger:     logger,
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	t.Run("CreateStudy", func(t *testing.T) {
		mockCalc.On("Generate", mock.Anything).Return(&domain.StudyReport{
			PropertyAddress: "150 E Boca Raton Rd",
			PropertyType:    domain.PropertyCommercial,
			StudyYear:       2025,
			GeneratedAt:     time.Now().UTC(),
		}, nil).Once()
		mockStudies.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		resp := postJSON(t, testServer.URL+"/api/v1/studies", validStudyRequest())
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		study := decode[api.Study](t, resp.Body)
		assert.NotEmpty(t, study.ID)
		assert.Equal(t, "150 E Boca Raton Rd", study.Request.PropertyAddress)
		mockStudies.AssertExpectations(t)
	})

	t.Run("CreateStudy_NoAssets", func(t *testing.T) {
		req := validStudyRequest()
		req.Assets = nil

		resp := postJSON(t, testServer.URL+"/api/v1/studies", req)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid_study", decode[api.Error](t, resp.Body).Code)
	})

	t.Run("ListStudies", func(t *testing.T) {
		created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mockStudies.On("List", mock.Anything).Return([]store.StudySummaryRow{
			{
				ID:                      "study-001",
				PropertyAddress:         "150 E Boca Raton Rd",
				PropertyType:            "commercial",
				StudyYear:               2025,
				TotalFirstYearDeduction: 617_948.72,
				CreatedAt:               created,
			},
		}, nil).Once()

		resp, err := http.Get(testServer.URL + "/api/v1/studies")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listings := decode[[]api.StudyListing](t, resp.Body)
		require.Len(t, listings, 1)
		assert.Equal(t, "study-001", listings[0].ID)
		assert.Equal(t, 617_948.72, listings[0].TotalFirstYearDeduction)
	})

	t.Run("GetStudy", func(t *testing.T) {
		mockStudies.On("Get", mock.Anything, "study-001").Return(&store.StudyRecord{
			ID:              "study-001",
			PropertyAddress: "150 E Boca Raton Rd",
			PropertyType:    "commercial",
			Assets:          []byte(`[]`),
			Report:          []byte(`{}`),
		}, nil).Once()

		resp, err := http.Get(testServer.URL + "/api/v1/studies/study-001")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "study-001", decode[api.Study](t, resp.Body).ID)
	})

	t.Run("GetStudy_NotFound", func(t *testing.T) {
		mockStudies.On("Get", mock.Anything, "missing").Return(nil, studystore.ErrNotFound).Once()

		resp, err := http.Get(testServer.URL + "/api/v1/studies/missing")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "not_found", decode[api.Error](t, resp.Body).Code)
	})

	t.Run("RecalculateStudy", func(t *testing.T) {
		assets, err := json.Marshal(validStudyRequest().Assets)
		require.NoError(t, err)
		mockStudies.On("Get", mock.Anything, "study-001").Return(&store.StudyRecord{
			ID:              "study-001",
			PropertyAddress: "150 E Boca Raton Rd",
			PropertyType:    "commercial",
			BuildingValue:   2_000_000,
			TaxRate:         37,
			BonusRate:       100,
			Assets:          assets,
			Report:          []byte(`{}`),
			CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}, nil).Once()
		mockCalc.On("Generate", mock.MatchedBy(func(input domain.StudyInput) bool {
			return input.TaxRate == 30
		})).Return(&domain.StudyReport{}, nil).Once()
		mockStudies.On("UpdateReport", mock.Anything, mock.Anything).Return(nil).Once()

		taxRate := 30.0
		resp := postJSON(t, testServer.URL+"/api/v1/studies/study-001/recalculate",
			api.RecalculateRequest{TaxRate: &taxRate})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		study := decode[api.Study](t, resp.Body)
		assert.Equal(t, 30.0, study.Request.TaxRate)
		mockCalc.AssertExpectations(t)
	})

	t.Run("RecalculateStudy_ChunkedBody", func(t *testing.T) {
		assets, err := json.Marshal(validStudyRequest().Assets)
		require.NoError(t, err)
		mockStudies.On("Get", mock.Anything, "study-001").Return(&store.StudyRecord{
			ID:              "study-001",
			PropertyAddress: "150 E Boca Raton Rd",
			PropertyType:    "commercial",
			BuildingValue:   2_000_000,
			TaxRate:         37,
			BonusRate:       100,
			Assets:          assets,
			Report:          []byte(`{}`),
		}, nil).Once()
		mockCalc.On("Generate", mock.MatchedBy(func(input domain.StudyInput) bool {
			return input.TaxRate == 25
		})).Return(&domain.StudyReport{}, nil).Once()
		mockStudies.On("UpdateReport", mock.Anything, mock.Anything).Return(nil).Once()

		// A plain io.Reader body leaves the request without a
		// Content-Length, so it goes out chunked; the override must
		// still be applied.
		taxRate := 25.0
		payload, err := json.Marshal(api.RecalculateRequest{TaxRate: &taxRate})
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPost,
			testServer.URL+"/api/v1/studies/study-001/recalculate",
			struct{ io.Reader }{bytes.NewReader(payload)})
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, 25.0, decode[api.Study](t, resp.Body).Request.TaxRate)
		mockCalc.AssertExpectations(t)
	})

	t.Run("RecalculateStudy_NoBody", func(t *testing.T) {
		assets, err := json.Marshal(validStudyRequest().Assets)
		require.NoError(t, err)
		mockStudies.On("Get", mock.Anything, "study-001").Return(&store.StudyRecord{
			ID:              "study-001",
			PropertyAddress: "150 E Boca Raton Rd",
			PropertyType:    "commercial",
			BuildingValue:   2_000_000,
			TaxRate:         37,
			BonusRate:       100,
			Assets:          assets,
			Report:          []byte(`{}`),
		}, nil).Once()
		mockCalc.On("Generate", mock.MatchedBy(func(input domain.StudyInput) bool {
			return input.TaxRate == 37
		})).Return(&domain.StudyReport{}, nil).Once()
		mockStudies.On("UpdateReport", mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := http.Post(testServer.URL+"/api/v1/studies/study-001/recalculate",
			"application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, 37.0, decode[api.Study](t, resp.Body).Request.TaxRate,
			"stored rates are kept when no overrides are sent")
		mockCalc.AssertExpectations(t)
	})
}

func TestWebAPI_LeadEndpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockLeads := new(mockLeadStore)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Leads:  mockLeads,
			Logger: logger,
		},
	}
	testServer := httptest.NewServer(ConfigureRouter(config))
	defer testServer.Close()

	saleDate := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("ImportLeads", func(t *testing.T) {
		// Two valid leads, one missing its parcel id. The store reports
		// one of the two valid rows as already present.
		mockLeads.On("Add", mock.Anything, mock.MatchedBy(func(records []store.LeadRecord) bool {
			return len(records) == 2
		})).Return(1, nil).Once()

		payload := []api.Lead{
			{County: "Palm Beach", ParcelID: "00-4243-001", SalePrice: 2_450_000, SaleDate: saleDate},
			{County: "Palm Beach", ParcelID: "00-4243-002", SalePrice: 1_100_000, SaleDate: saleDate},
			{County: "Palm Beach", SalePrice: 900_000, SaleDate: saleDate},
		}
		resp := postJSON(t, testServer.URL+"/api/v1/leads/import", payload)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		result := decode[api.LeadImportResult](t, resp.Body)
		assert.Equal(t, 3, result.Parsed)
		assert.Equal(t, 1, result.Imported)
		assert.Equal(t, 1, result.Duplicate)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, 3, result.Skipped[0].Line)
	})

	t.Run("ImportLeads_EmptyBatch", func(t *testing.T) {
		resp := postJSON(t, testServer.URL+"/api/v1/leads/import", []api.Lead{})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "empty_batch", decode[api.Error](t, resp.Body).Code)
	})

	t.Run("ListLeads_ByCounty", func(t *testing.T) {
		mockLeads.On("List", mock.Anything, "Palm Beach").Return([]store.LeadRecord{
			{ID: "lead-1", County: "Palm Beach", ParcelID: "00-4243-001", SalePrice: 2_450_000, SaleDate: saleDate},
		}, nil).Once()

		resp, err := http.Get(testServer.URL + "/api/v1/leads?county=Palm+Beach")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		leads := decode[[]api.Lead](t, resp.Body)
		require.Len(t, leads, 1)
		assert.Equal(t, "00-4243-001", leads[0].ParcelID)
	})
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var value T
	require.NoError(t, json.NewDecoder(r).Decode(&value))
	return value
}
