package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/handlers/respond"
	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/domain"
	"github.com/boca-banker/boca-banker/pkg/services/allocation"
	"github.com/boca-banker/boca-banker/pkg/services/depreciation"
	"github.com/boca-banker/boca-banker/pkg/services/savings"
)

// Handler serves the standalone calculator endpoints. The engine is pure, so
// there are no dependencies to inject; validation happens here so the engine
// never sees out-of-range enumerated inputs.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) CalculateDepreciation(w http.ResponseWriter, r *http.Request) {
	var req api.DepreciationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not valid JSON")
		return
	}
	if req.CostBasis <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_cost_basis", "costBasis must be positive")
		return
	}
	period := domain.RecoveryPeriod(req.RecoveryPeriod)
	if !period.Valid() {
		respond.Error(w, r, http.StatusBadRequest, "invalid_recovery_period",
			fmt.Sprintf("recoveryPeriod must be one of 5, 7, 15, 27.5, 39; got %v", req.RecoveryPeriod))
		return
	}
	if req.BonusRate < 0 || req.BonusRate > 100 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_bonus_rate", "bonusRate must be within 0-100")
		return
	}

	schedule, err := depreciation.CalculateSchedule(decimal.NewFromFloat(req.CostBasis), period, req.BonusRate)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "calculation_failed", err.Error())
		return
	}
	respond.JSON(w, r, http.StatusOK, api.DepreciationResponse{
		Schedule: adapters.MapScheduleDomainToApi(schedule),
	})
}

func (h *Handler) CalculateBonus(w http.ResponseWriter, r *http.Request) {
	var req api.BonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not valid JSON")
		return
	}
	if req.Amount <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_amount", "amount must be positive")
		return
	}
	period := domain.RecoveryPeriod(req.RecoveryPeriod)
	if !period.Valid() {
		respond.Error(w, r, http.StatusBadRequest, "invalid_recovery_period",
			fmt.Sprintf("recoveryPeriod must be one of 5, 7, 15, 27.5, 39; got %v", req.RecoveryPeriod))
		return
	}

	result, err := depreciation.CalculateBonus(decimal.NewFromFloat(req.Amount), period, req.BonusRate)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "calculation_failed", err.Error())
		return
	}
	respond.JSON(w, r, http.StatusOK, adapters.MapBonusDomainToApi(result))
}

func (h *Handler) CalculateNPV(w http.ResponseWriter, r *http.Request) {
	var req api.NPVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not valid JSON")
		return
	}
	if req.DiscountRate < 0 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_discount_rate", "discountRate must be >= 0")
		return
	}

	flows := make([]decimal.Decimal, 0, len(req.CashFlows))
	for _, flow := range req.CashFlows {
		flows = append(flows, decimal.NewFromFloat(flow))
	}
	npv, err := savings.CalculateNPV(flows, req.DiscountRate)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "calculation_failed", err.Error())
		return
	}
	respond.JSON(w, r, http.StatusOK, api.NPVResponse{NPV: npv.InexactFloat64()})
}

func (h *Handler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	propertyType := domain.PropertyType(chi.URLParam(r, "propertyType"))
	if !propertyType.Known() {
		respond.Error(w, r, http.StatusBadRequest, "unknown_property_type",
			fmt.Sprintf("unknown property type %q", propertyType))
		return
	}

	rawValue := r.URL.Query().Get("buildingValue")
	buildingValue, err := strconv.ParseFloat(rawValue, 64)
	if err != nil || buildingValue <= 0 {
		respond.Error(w, r, http.StatusBadRequest, "invalid_building_value",
			"buildingValue query parameter must be a positive number")
		return
	}

	items, err := allocation.DefaultAllocation(propertyType, decimal.NewFromFloat(buildingValue))
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "allocation_failed", err.Error())
		return
	}
	respond.JSON(w, r, http.StatusOK, api.AllocationResponse{
		PropertyType:  string(propertyType),
		BuildingValue: buildingValue,
		Items:         adapters.MapAllocationDomainToApi(items),
	})
}
