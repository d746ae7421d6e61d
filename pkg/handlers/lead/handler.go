package lead

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/boca-banker/boca-banker/pkg/adapters"
	"github.com/boca-banker/boca-banker/pkg/handlers/respond"
	"github.com/boca-banker/boca-banker/pkg/models/api"
	"github.com/boca-banker/boca-banker/pkg/models/store"
	leadstore "github.com/boca-banker/boca-banker/pkg/store/duckdb/lead"
)

type Handler struct {
	leads leadstore.Store
}

func NewHandler(leads leadstore.Store) *Handler {
	return &Handler{leads: leads}
}

// ImportLeads accepts a JSON array of scraped sale records. Rows without a
// parcel id or with a non-positive price are rejected per row, not per
// batch; rows already in the store count as duplicates, not errors.
func (h *Handler) ImportLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload []api.Lead
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid_body", "request body is not a JSON array of leads")
		return
	}
	if len(payload) == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty_batch", "lead batch must not be empty")
		return
	}

	result := api.LeadImportResult{Parsed: len(payload)}
	records := make([]store.LeadRecord, 0, len(payload))
	for i, lead := range payload {
		if lead.ParcelID == "" {
			result.Skipped = append(result.Skipped, api.ImportSkip{Line: i + 1, Reason: "empty parcel id"})
			continue
		}
		if lead.SalePrice <= 0 {
			result.Skipped = append(result.Skipped, api.ImportSkip{Line: i + 1, Reason: "sale price must be positive"})
			continue
		}
		records = append(records, adapters.MapLeadDomainToStore(adapters.MapLeadApiToDomain(lead)))
	}

	if len(records) > 0 {
		inserted, err := h.leads.Add(ctx, records)
		if err != nil {
			logger.Error().Err(err).Msg("failed to store leads")
			respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to store leads")
			return
		}
		result.Imported = inserted
		result.Duplicate = len(records) - inserted
	}
	respond.JSON(w, r, http.StatusOK, result)
}

func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	county := r.URL.Query().Get("county")

	records, err := h.leads.List(ctx, county)
	if err != nil {
		logger.Error().Err(err).Str("county", county).Msg("failed to list leads")
		respond.Error(w, r, http.StatusInternalServerError, "internal", "failed to list leads")
		return
	}

	leads := make([]api.Lead, 0, len(records))
	for _, record := range records {
		leads = append(leads, adapters.MapLeadStoreToApi(record))
	}
	respond.JSON(w, r, http.StatusOK, leads)
}
