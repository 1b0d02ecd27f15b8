package services

import "wayfarer/internal/models/domain"

// Merge-by-id: freshly fetched records are combined with previously persisted
// ones so user-set flags (and any detail enrichments already saved) survive a
// refetch. A given id never appears twice in the result.

func MergeRestaurants(fetched, existing []domain.Restaurant) []domain.Restaurant {
	byID := make(map[string]domain.Restaurant, len(existing))
	for _, r := range existing {
		byID[r.ID] = r
	}

	merged := make([]domain.Restaurant, 0, len(fetched))
	seen := make(map[string]bool, len(fetched))
	for _, r := range fetched {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true

		if prev, ok := byID[r.ID]; ok {
			r.IsBookmarked = prev.IsBookmarked
			if prev.Phone != "" {
				r.Phone = prev.Phone
			}
			if prev.Website != "" {
				r.Website = prev.Website
			}
			if prev.OpeningHours != "" {
				r.OpeningHours = prev.OpeningHours
			}
		}
		merged = append(merged, r)
	}
	return merged
}

func MergeAttractions(fetched, existing []domain.Attraction) []domain.Attraction {
	byID := make(map[string]domain.Attraction, len(existing))
	for _, a := range existing {
		byID[a.ID] = a
	}

	merged := make([]domain.Attraction, 0, len(fetched))
	seen := make(map[string]bool, len(fetched))
	for _, a := range fetched {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true

		if prev, ok := byID[a.ID]; ok {
			a.IsPlanned = prev.IsPlanned
			a.IsCompleted = prev.IsCompleted
			// completed implies planned
			if a.IsCompleted {
				a.IsPlanned = true
			}
		}
		merged = append(merged, a)
	}
	return merged
}
