package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cost functions are pure: no I/O, no state. Token counts are assumed
// pre-validated non-negative by the transport layer. Values are computed
// through decimal arithmetic so input + output always reconstructs the total;
// rounding is left to presentation.

// Estimate computes the cost of running the given token mix on one model.
func Estimate(rec PricingRecord, inputTokens, outputTokens int) CostEstimate {
	inputCost, outputCost, totalCost := splitCost(rec, inputTokens, outputTokens)

	return CostEstimate{
		ModelName:    rec.ModelName,
		Provider:     rec.Provider,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		InputCost:    inputCost,
		OutputCost:   outputCost,
		TotalCost:    totalCost,
		Currency:     rec.Currency,
		Timestamp:    time.Now().UTC(),
	}
}

// Compare computes the cost of the same token mix across several models.
// Models that cannot be resolved stay in the result flagged unavailable —
// callers need to see what was not found. Cheapest/most-expensive selection
// runs over available entries only, ties broken by input order.
func Compare(
	ctx context.Context,
	records []PricingRecord,
	modelNames []string,
	inputTokens, outputTokens int,
) CostComparison {
	totalTokens := inputTokens + outputTokens

	comparisons := make([]ModelCostComparison, 0, len(modelNames))
	var cheapest, mostExpensive *ModelCostComparison

	for _, name := range modelNames {
		rec := findModel(ctx, records, name)
		if rec == nil {
			comparisons = append(comparisons, ModelCostComparison{
				ModelName:    name,
				IsAvailable:  false,
				ErrorMessage: fmt.Sprintf("model %q not found", name),
			})
			continue
		}

		inputCost, outputCost, totalCost := splitCost(*rec, inputTokens, outputTokens)

		entry := ModelCostComparison{
			ModelName:       rec.ModelName,
			Provider:        rec.Provider,
			InputCost:       inputCost,
			OutputCost:      outputCost,
			TotalCost:       totalCost,
			CostPer1MTokens: costPer1M(totalCost, totalTokens),
			IsAvailable:     true,
		}
		comparisons = append(comparisons, entry)

		last := &comparisons[len(comparisons)-1]
		if cheapest == nil || last.TotalCost < cheapest.TotalCost {
			cheapest = last
		}
		if mostExpensive == nil || last.TotalCost > mostExpensive.TotalCost {
			mostExpensive = last
		}
	}

	result := CostComparison{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  totalTokens,
		Models:       comparisons,
		Currency:     DefaultCurrency,
		Timestamp:    time.Now().UTC(),
	}
	if cheapest != nil {
		result.CheapestModel = cheapest.ModelName
		result.MostExpensiveModel = mostExpensive.ModelName
		result.CostRange = &CostRange{
			Min:        cheapest.TotalCost,
			Max:        mostExpensive.TotalCost,
			Difference: mostExpensive.TotalCost - cheapest.TotalCost,
		}
	}

	return result
}

// splitCost multiplies token counts by per-token costs through decimals so
// the parts sum exactly to the total.
func splitCost(rec PricingRecord, inputTokens, outputTokens int) (inputCost, outputCost, totalCost float64) {
	in := decimal.NewFromFloat(rec.CostPerInputToken).Mul(decimal.NewFromInt(int64(inputTokens)))
	out := decimal.NewFromFloat(rec.CostPerOutputToken).Mul(decimal.NewFromInt(int64(outputTokens)))
	total := in.Add(out)

	return in.InexactFloat64(), out.InexactFloat64(), total.InexactFloat64()
}

// costPer1M is the blended average rate across the given input/output mix.
// Zero total tokens yields an explicit zero, not a division error.
func costPer1M(totalCost float64, totalTokens int) float64 {
	if totalTokens <= 0 {
		return 0
	}
	return decimal.NewFromFloat(totalCost).
		Div(decimal.NewFromInt(int64(totalTokens))).
		Mul(decimal.NewFromInt(tokensPerMillion)).
		InexactFloat64()
}

// LookupModel resolves one model name against an already fetched record list
// using the same case-insensitive first-match rule as the aggregator.
func LookupModel(ctx context.Context, records []PricingRecord, modelName string) *PricingRecord {
	if strings.TrimSpace(modelName) == "" {
		return nil
	}
	return findModel(ctx, records, modelName)
}
