package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/observability"
)

// Handler handles HTTP requests.
type Handler struct {
	aggregator *domain.Aggregator
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(aggregator *domain.Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

// PricingResponse is the payload of the pricing endpoints.
type PricingResponse struct {
	Models         []domain.RecordView     `json:"models"`
	TotalModels    int                     `json:"total_models"`
	ProviderStatus []domain.ProviderStatus `json:"provider_status"`
	Timestamp      time.Time               `json:"timestamp"`
}

// EstimateRequest is the body of POST /estimate.
type EstimateRequest struct {
	ModelName    string `json:"model_name"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// CompareRequest is the body of POST /compare.
type CompareRequest struct {
	ModelNames   []string `json:"model_names"`
	InputTokens  int      `json:"input_tokens"`
	OutputTokens int      `json:"output_tokens"`
}

// HandleRoot describes the service and its routes.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	writeJSON(r, w, http.StatusOK, map[string]any{
		"service": "modelrates",
		"endpoints": []string{
			"GET /pricing",
			"GET /performance",
			"GET /use-cases",
			"GET /health",
			"GET /metrics",
			"POST /estimate",
			"POST /compare",
		},
	})
}

// HandlePricing serves the merged pricing catalog, optionally filtered to one
// provider via ?provider=.
func (h *Handler) HandlePricing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	provider := strings.TrimSpace(r.URL.Query().Get("provider"))

	var (
		records  []domain.PricingRecord
		statuses []domain.ProviderStatus
	)
	if provider == "" {
		records, statuses = h.aggregator.GetAllPricing(ctx)
	} else {
		ctx = observability.WithProvider(ctx, provider)
		records, statuses = h.aggregator.GetPricingByProvider(ctx, provider)
		if len(statuses) == 0 {
			http.Error(w, fmt.Sprintf("unknown provider %q", provider), http.StatusNotFound)
			return
		}
	}

	views := make([]domain.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, rec.View())
	}

	writeJSON(r, w, http.StatusOK, PricingResponse{
		Models:         views,
		TotalModels:    len(views),
		ProviderStatus: statuses,
		Timestamp:      time.Now().UTC(),
	})
}

// HandlePerformance serves the performance report, optionally filtered to one
// provider via ?provider=.
func (h *Handler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, statuses, ok := h.fetchFiltered(w, r)
	if !ok {
		return
	}

	writeJSON(r, w, http.StatusOK, domain.BuildPerformanceReport(records, statuses))
}

// HandleUseCases serves the use-case report, optionally filtered to one
// provider via ?provider=.
func (h *Handler) HandleUseCases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, _, ok := h.fetchFiltered(w, r)
	if !ok {
		return
	}

	writeJSON(r, w, http.StatusOK, domain.BuildUseCaseReport(records))
}

// HandleEstimate computes the cost of one model at a given token mix.
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.ModelName) == "" {
		http.Error(w, "model_name is required", http.StatusBadRequest)
		return
	}
	if req.InputTokens < 0 || req.OutputTokens < 0 {
		http.Error(w, "token counts must be non-negative", http.StatusBadRequest)
		return
	}

	ctx = observability.WithModel(ctx, req.ModelName)

	rec := h.aggregator.FindModelPricing(ctx, req.ModelName)
	if rec == nil {
		http.Error(w, fmt.Sprintf("model %q not found", req.ModelName), http.StatusNotFound)
		return
	}

	estimate := domain.Estimate(*rec, req.InputTokens, req.OutputTokens)

	observability.FromContext(ctx).Info("cost estimated",
		zap.String("model", estimate.ModelName),
		zap.String("provider", estimate.Provider),
		zap.Float64("total_cost", estimate.TotalCost),
	)

	writeJSON(r, w, http.StatusOK, estimate)
}

// HandleCompare computes the cost of several models at the same token mix.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.ModelNames) == 0 {
		http.Error(w, "model_names must not be empty", http.StatusBadRequest)
		return
	}
	if req.InputTokens < 0 || req.OutputTokens < 0 {
		http.Error(w, "token counts must be non-negative", http.StatusBadRequest)
		return
	}

	records, _ := h.aggregator.GetAllPricing(ctx)
	comparison := domain.Compare(ctx, records, req.ModelNames, req.InputTokens, req.OutputTokens)

	writeJSON(r, w, http.StatusOK, comparison)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r, w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// fetchFiltered resolves the optional ?provider= filter into records and
// statuses, writing the 404 itself when the provider is unknown.
func (h *Handler) fetchFiltered(
	w http.ResponseWriter,
	r *http.Request,
) ([]domain.PricingRecord, []domain.ProviderStatus, bool) {
	ctx := r.Context()

	provider := strings.TrimSpace(r.URL.Query().Get("provider"))
	if provider == "" {
		records, statuses := h.aggregator.GetAllPricing(ctx)
		return records, statuses, true
	}

	ctx = observability.WithProvider(ctx, provider)
	records, statuses := h.aggregator.GetPricingByProvider(ctx, provider)
	if len(statuses) == 0 {
		http.Error(w, fmt.Sprintf("unknown provider %q", provider), http.StatusNotFound)
		return nil, nil, false
	}

	return records, statuses, true
}

func writeJSON(r *http.Request, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Status already written, can't change it, just log.
		observability.FromContext(r.Context()).Error("failed to encode response", zap.Error(err))
	}
}
