package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modelrates/modelrates/internal/domain"
	internalhttp "github.com/modelrates/modelrates/internal/http"
)

type stubSource struct {
	name    string
	records []domain.PricingRecord
	err     error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) FetchPricingData(ctx context.Context) ([]domain.PricingRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubSource) PricingWithStatus(ctx context.Context) ([]domain.PricingRecord, domain.ProviderStatus) {
	if s.err != nil {
		return nil, domain.ProviderStatus{ProviderName: s.name, IsAvailable: false, ErrorMessage: s.err.Error()}
	}
	return s.records, domain.ProviderStatus{ProviderName: s.name, IsAvailable: true, ModelsCount: len(s.records)}
}

func record(model, provider string, inputCost, outputCost float64) domain.PricingRecord {
	return domain.PricingRecord{
		ModelName:          model,
		Provider:           provider,
		CostPerInputToken:  inputCost,
		CostPerOutputToken: outputCost,
		Currency:           domain.DefaultCurrency,
		Unit:               domain.UnitPerToken,
		LastUpdated:        time.Now().UTC(),
	}
}

func newTestHandler() *internalhttp.Handler {
	agg := domain.NewAggregator([]domain.PricingSource{
		&stubSource{name: "OpenAI", records: []domain.PricingRecord{
			record("gpt-4", "OpenAI", 0.00003, 0.00006),
			record("gpt-3.5-turbo", "OpenAI", 0.0000005, 0.0000015),
		}},
		&stubSource{name: "Anthropic", records: []domain.PricingRecord{
			record("claude-3-opus", "Anthropic", 0.000015, 0.000075),
		}},
		&stubSource{name: "Broken", err: errors.New("provider down")},
	}, map[string]string{"claude": "anthropic"}, nil)

	return internalhttp.NewHandler(agg)
}

func TestHandler_HandlePricing(t *testing.T) {
	handler := newTestHandler()

	t.Run("returns merged catalog with provider statuses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePricing(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp internalhttp.PricingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		require.Equal(t, 3, resp.TotalModels)
		require.Len(t, resp.ProviderStatus, 3)
		require.False(t, resp.ProviderStatus[2].IsAvailable)

		// Derived volume costs come precomputed.
		require.InDelta(t, 0.45, resp.Models[0].CostAt10KTokens.TotalCost, 1e-9)
	})

	t.Run("provider filter accepts aliases", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePricing(rec, httptest.NewRequest(http.MethodGet, "/pricing?provider=claude", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp internalhttp.PricingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.TotalModels)
		require.Equal(t, "claude-3-opus", resp.Models[0].ModelName)
	})

	t.Run("unknown provider is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePricing(rec, httptest.NewRequest(http.MethodGet, "/pricing?provider=nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("failing provider still yields 200 with its status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePricing(rec, httptest.NewRequest(http.MethodGet, "/pricing?provider=broken", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp internalhttp.PricingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Zero(t, resp.TotalModels)
		require.Len(t, resp.ProviderStatus, 1)
		require.False(t, resp.ProviderStatus[0].IsAvailable)
	})

	t.Run("POST is not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePricing(rec, httptest.NewRequest(http.MethodPost, "/pricing", nil))

		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandler_HandleEstimate(t *testing.T) {
	handler := newTestHandler()

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/estimate", strings.NewReader(body))
		handler.HandleEstimate(rec, req)
		return rec
	}

	t.Run("estimates a known model", func(t *testing.T) {
		rec := post(`{"model_name":"GPT-4","input_tokens":1000,"output_tokens":500}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var estimate domain.CostEstimate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &estimate))
		require.Equal(t, "gpt-4", estimate.ModelName)
		require.InDelta(t, 0.03, estimate.InputCost, 1e-9)
		require.InDelta(t, 0.03, estimate.OutputCost, 1e-9)
		require.InDelta(t, 0.06, estimate.TotalCost, 1e-9)
	})

	t.Run("unknown model is 404", func(t *testing.T) {
		rec := post(`{"model_name":"no-such-model","input_tokens":100,"output_tokens":100}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("negative tokens are rejected", func(t *testing.T) {
		rec := post(`{"model_name":"gpt-4","input_tokens":-1,"output_tokens":100}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing model name is rejected", func(t *testing.T) {
		rec := post(`{"input_tokens":100,"output_tokens":100}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		rec := post(`{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleEstimate(rec, httptest.NewRequest(http.MethodGet, "/estimate", nil))
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandler_HandleCompare(t *testing.T) {
	handler := newTestHandler()

	post := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/compare", strings.NewReader(body))
		handler.HandleCompare(rec, req)
		return rec
	}

	t.Run("compares across providers and keeps missing models", func(t *testing.T) {
		rec := post(`{"model_names":["gpt-4","claude-3-opus","missing-model"],"input_tokens":2000,"output_tokens":0}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.CostComparison
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

		require.Len(t, result.Models, 3)
		require.False(t, result.Models[2].IsAvailable)
		require.Equal(t, "claude-3-opus", result.CheapestModel)
		require.Equal(t, "gpt-4", result.MostExpensiveModel)
		require.NotNil(t, result.CostRange)
	})

	t.Run("empty model list is rejected", func(t *testing.T) {
		rec := post(`{"model_names":[],"input_tokens":100,"output_tokens":100}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative tokens are rejected", func(t *testing.T) {
		rec := post(`{"model_names":["gpt-4"],"input_tokens":0,"output_tokens":-5}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_Reports(t *testing.T) {
	handler := newTestHandler()

	t.Run("performance report includes every model", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePerformance(rec, httptest.NewRequest(http.MethodGet, "/performance", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var report domain.PerformanceReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		require.Equal(t, 3, report.TotalModels)
		require.Len(t, report.ProviderStatus, 3)
	})

	t.Run("use-case report groups by provider", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandleUseCases(rec, httptest.NewRequest(http.MethodGet, "/use-cases", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var report domain.UseCaseReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		require.Equal(t, 3, report.TotalModels)
		require.Len(t, report.Providers, 2)
	})

	t.Run("unknown provider filter is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.HandlePerformance(rec, httptest.NewRequest(http.MethodGet, "/performance?provider=ghost", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_HandleHealth(t *testing.T) {
	handler := newTestHandler()

	rec := httptest.NewRecorder()
	handler.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}
