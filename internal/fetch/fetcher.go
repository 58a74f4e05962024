// Package fetch implements the network tiers of the provider fallback chain:
// live model discovery, pricing-page scraping, and health probes.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/modelrates/modelrates/internal/observability"
)

// DefaultTimeout bounds every outbound request so one unresponsive provider
// cannot stall an aggregation past this ceiling.
const DefaultTimeout = 10 * time.Second

// ModelPrice is a scraped per-1K-token price pair for one model.
type ModelPrice struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// HealthStatus is the outcome of a lightweight status-endpoint probe.
type HealthStatus struct {
	Healthy    bool    `json:"healthy"`
	LatencyMS  float64 `json:"latency_ms"`
	StatusCode int     `json:"status_code"`
}

// Fetcher performs the HTTP legs of the fallback chain.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a fetcher whose requests time out after the given
// duration (DefaultTimeout when zero).
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// modelListResponse covers the two common list shapes:
// {"data":[{"id":...}]} (OpenAI-style) and {"models":[...]}.
type modelListResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
	Models []json.RawMessage `json:"models"`
}

// ModelList fetches the provider's model-listing endpoint and extracts model
// identifiers.
func (f *Fetcher) ModelList(ctx context.Context, endpoint, apiKey string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model list returned status %d", resp.StatusCode)
	}

	var parsed modelListResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&parsed); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode model list: %w", decodeErr)
	}

	models := make([]string, 0, len(parsed.Data)+len(parsed.Models))
	for _, m := range parsed.Data {
		if m.ID != "" {
			models = append(models, m.ID)
		}
	}
	for _, raw := range parsed.Models {
		if id := decodeModelID(raw); id != "" {
			models = append(models, id)
		}
	}

	if len(models) == 0 {
		return nil, errors.New("model list contained no models")
	}

	observability.FromContext(ctx).Debug("fetched model list",
		observability.String("endpoint", endpoint),
		observability.Int("models", len(models)))

	return models, nil
}

// decodeModelID handles "models" entries that are either bare strings or
// objects with an "id" field.
func decodeModelID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.ID
	}
	return ""
}

var (
	tableRe = regexp.MustCompile(`(?is)<table[^>]*>(.*?)</table>`)
	rowRe   = regexp.MustCompile(`(?is)<tr[^>]*>(.*?)</tr>`)
	cellRe  = regexp.MustCompile(`(?is)<t[dh][^>]*>(.*?)</t[dh]>`)
	tagRe   = regexp.MustCompile(`(?s)<[^>]*>`)
)

// PricingPage fetches a public pricing page and scrapes per-model costs from
// the first table shaped as model | input price | output price.
func (f *Fetcher) PricingPage(ctx context.Context, url string) (map[string]ModelPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pricing page returned status %d", resp.StatusCode)
	}

	var body strings.Builder
	if _, copyErr := copyBounded(&body, resp); copyErr != nil {
		return nil, fmt.Errorf("failed to read pricing page: %w", copyErr)
	}

	pricing := parsePricingTable(body.String())
	if len(pricing) == 0 {
		return nil, errors.New("no pricing table found")
	}

	observability.FromContext(ctx).Debug("scraped pricing page",
		observability.String("url", url),
		observability.Int("models", len(pricing)))

	return pricing, nil
}

// parsePricingTable extracts model/input/output rows from the first HTML
// table in the document. Rows that don't parse as prices are skipped.
func parsePricingTable(html string) map[string]ModelPrice {
	tables := tableRe.FindAllStringSubmatch(html, 1)
	if len(tables) == 0 {
		return nil
	}

	pricing := make(map[string]ModelPrice)
	rows := rowRe.FindAllStringSubmatch(tables[0][1], -1)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cells := cellRe.FindAllStringSubmatch(row[1], -1)
		if len(cells) < 3 {
			continue
		}

		model := cellText(cells[0][1])
		input, inErr := parsePrice(cellText(cells[1][1]))
		output, outErr := parsePrice(cellText(cells[2][1]))
		if model == "" || inErr != nil || outErr != nil {
			continue
		}

		pricing[model] = ModelPrice{Input: input, Output: output}
	}

	return pricing
}

func cellText(cell string) string {
	return strings.TrimSpace(tagRe.ReplaceAllString(cell, ""))
}

func parsePrice(text string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(text)
	return strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
}

// maxPageBytes caps how much of a pricing page is read; tables sit well
// within this on every known provider page.
const maxPageBytes = 2 << 20

func copyBounded(dst *strings.Builder, resp *http.Response) (int64, error) {
	return io.Copy(dst, io.LimitReader(resp.Body, maxPageBytes))
}

// HealthCheck probes a public status endpoint and measures round-trip
// latency. Non-2xx/3xx responses report Healthy=false, not an error.
func (f *Fetcher) HealthCheck(ctx context.Context, url string) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	return HealthStatus{
		Healthy:    resp.StatusCode < http.StatusBadRequest,
		LatencyMS:  float64(time.Since(start)) / float64(time.Millisecond),
		StatusCode: resp.StatusCode,
	}, nil
}
