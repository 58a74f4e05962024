package domain

import "time"

// BuildUseCaseReport groups the catalog's use-case metadata by provider,
// preserving the merged catalog's provider ordering.
func BuildUseCaseReport(records []PricingRecord) UseCaseReport {
	order := make([]string, 0)
	byProvider := make(map[string][]ModelUseCases)

	for _, rec := range records {
		if _, seen := byProvider[rec.Provider]; !seen {
			order = append(order, rec.Provider)
		}
		byProvider[rec.Provider] = append(byProvider[rec.Provider], ModelUseCases{
			ModelName: rec.ModelName,
			UseCases:  rec.UseCases,
			Strengths: rec.Strengths,
			BestFor:   rec.BestFor,
		})
	}

	providers := make([]ProviderUseCases, 0, len(order))
	total := 0
	for _, name := range order {
		providers = append(providers, ProviderUseCases{
			Provider: name,
			Models:   byProvider[name],
		})
		total += len(byProvider[name])
	}

	return UseCaseReport{
		Providers:   providers,
		TotalModels: total,
		Timestamp:   time.Now().UTC(),
	}
}
