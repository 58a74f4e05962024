// Package mcp exposes the pricing aggregator over the Model Context Protocol
// so LLM clients can query pricing, estimate costs, and compare models as
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcp_golang "github.com/metoro-io/mcp-golang"
	"github.com/metoro-io/mcp-golang/transport/stdio"

	"github.com/modelrates/modelrates/internal/domain"
	"github.com/modelrates/modelrates/internal/observability"
)

// Tool argument structures with jsonschema tags

type GetAllPricingArgs struct {
	Provider string `json:"provider" jsonschema:"description=Optional provider name or alias to filter by (e.g. openai or claude)"`
}

type EstimateCostArgs struct {
	ModelName    string `json:"model_name"    jsonschema:"required,description=Model name to estimate (case-insensitive)"`
	InputTokens  int    `json:"input_tokens"  jsonschema:"description=Number of input tokens"`
	OutputTokens int    `json:"output_tokens" jsonschema:"description=Number of output tokens"`
}

type CompareCostsArgs struct {
	ModelNames   []string `json:"model_names"   jsonschema:"required,description=Model names to compare"`
	InputTokens  int      `json:"input_tokens"  jsonschema:"description=Number of input tokens"`
	OutputTokens int      `json:"output_tokens" jsonschema:"description=Number of output tokens"`
}

type GetPerformanceArgs struct {
	Provider string `json:"provider" jsonschema:"description=Optional provider name or alias to filter by"`
}

type GetUseCasesArgs struct {
	Provider string `json:"provider" jsonschema:"description=Optional provider name or alias to filter by"`
}

// Server wraps an MCP server over the pricing aggregator.
type Server struct {
	aggregator *domain.Aggregator
	server     *mcp_golang.Server
}

// NewServer creates the MCP server on the stdio transport and registers the
// pricing tools.
func NewServer(aggregator *domain.Aggregator) (*Server, error) {
	s := &Server{
		aggregator: aggregator,
		server:     mcp_golang.NewServer(stdio.NewStdioServerTransport()),
	}
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	return s, nil
}

// Serve runs the MCP server until the transport closes.
func (s *Server) Serve() error {
	observability.FromContext(context.Background()).Info("starting MCP server on stdio")
	return s.server.Serve()
}

func (s *Server) registerTools() error {
	if err := s.server.RegisterTool(
		"get_all_pricing",
		"Get current pricing for all LLM models, optionally filtered by provider",
		s.handleGetAllPricing,
	); err != nil {
		return fmt.Errorf("failed to register get_all_pricing tool: %w", err)
	}

	if err := s.server.RegisterTool(
		"estimate_cost",
		"Estimate the cost of running a token workload on one model",
		s.handleEstimateCost,
	); err != nil {
		return fmt.Errorf("failed to register estimate_cost tool: %w", err)
	}

	if err := s.server.RegisterTool(
		"compare_costs",
		"Compare the cost of the same token workload across several models",
		s.handleCompareCosts,
	); err != nil {
		return fmt.Errorf("failed to register compare_costs tool: %w", err)
	}

	if err := s.server.RegisterTool(
		"get_performance_metrics",
		"Get throughput, latency, context window and value scores for all models",
		s.handleGetPerformance,
	); err != nil {
		return fmt.Errorf("failed to register get_performance_metrics tool: %w", err)
	}

	if err := s.server.RegisterTool(
		"get_use_cases",
		"Get recommended use cases and strengths for all models, grouped by provider",
		s.handleGetUseCases,
	); err != nil {
		return fmt.Errorf("failed to register get_use_cases tool: %w", err)
	}

	return nil
}

// Tool handlers

func (s *Server) handleGetAllPricing(args GetAllPricingArgs) (*mcp_golang.ToolResponse, error) {
	ctx := context.Background()

	records, statuses, errResp := s.fetchFiltered(ctx, args.Provider)
	if errResp != nil {
		return errResp, nil
	}

	views := make([]domain.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, rec.View())
	}

	return jsonResponse(map[string]any{
		"models":          views,
		"total_models":    len(views),
		"provider_status": statuses,
	})
}

func (s *Server) handleEstimateCost(args EstimateCostArgs) (*mcp_golang.ToolResponse, error) {
	ctx := context.Background()

	if strings.TrimSpace(args.ModelName) == "" {
		return textResponse("Error: model_name is required"), nil
	}
	if args.InputTokens < 0 || args.OutputTokens < 0 {
		return textResponse("Error: token counts must be non-negative"), nil
	}

	rec := s.aggregator.FindModelPricing(ctx, args.ModelName)
	if rec == nil {
		return textResponse(fmt.Sprintf("Error: model %q not found", args.ModelName)), nil
	}

	return jsonResponse(domain.Estimate(*rec, args.InputTokens, args.OutputTokens))
}

func (s *Server) handleCompareCosts(args CompareCostsArgs) (*mcp_golang.ToolResponse, error) {
	ctx := context.Background()

	if len(args.ModelNames) == 0 {
		return textResponse("Error: model_names must not be empty"), nil
	}
	if args.InputTokens < 0 || args.OutputTokens < 0 {
		return textResponse("Error: token counts must be non-negative"), nil
	}

	records, _ := s.aggregator.GetAllPricing(ctx)
	return jsonResponse(domain.Compare(ctx, records, args.ModelNames, args.InputTokens, args.OutputTokens))
}

func (s *Server) handleGetPerformance(args GetPerformanceArgs) (*mcp_golang.ToolResponse, error) {
	ctx := context.Background()

	records, statuses, errResp := s.fetchFiltered(ctx, args.Provider)
	if errResp != nil {
		return errResp, nil
	}

	return jsonResponse(domain.BuildPerformanceReport(records, statuses))
}

func (s *Server) handleGetUseCases(args GetUseCasesArgs) (*mcp_golang.ToolResponse, error) {
	ctx := context.Background()

	records, _, errResp := s.fetchFiltered(ctx, args.Provider)
	if errResp != nil {
		return errResp, nil
	}

	return jsonResponse(domain.BuildUseCaseReport(records))
}

// fetchFiltered resolves the optional provider filter, returning an error
// response for unknown providers.
func (s *Server) fetchFiltered(
	ctx context.Context,
	provider string,
) ([]domain.PricingRecord, []domain.ProviderStatus, *mcp_golang.ToolResponse) {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		records, statuses := s.aggregator.GetAllPricing(ctx)
		return records, statuses, nil
	}

	records, statuses := s.aggregator.GetPricingByProvider(ctx, provider)
	if len(statuses) == 0 {
		return nil, nil, textResponse(fmt.Sprintf("Error: unknown provider %q", provider))
	}

	return records, statuses, nil
}

func jsonResponse(payload any) (*mcp_golang.ToolResponse, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool response: %w", err)
	}
	return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(string(data))), nil
}

func textResponse(msg string) *mcp_golang.ToolResponse {
	return mcp_golang.NewToolResponse(mcp_golang.NewTextContent(msg))
}
