package donation

import (
	"sort"
	"time"
)

const hoursPerDay = 24

// Aggregate rolls donation records up to one DonorAggregate per donor.
// Non-positive amounts are dropped first; upstream ingestion should have
// excluded them already, but the filter is re-applied here so the
// aggregation contract holds regardless of the data path. A donor whose
// only gifts are non-positive produces no aggregate at all.
func Aggregate(records []Record, now time.Time) []DonorAggregate {
	byDonor := make(map[string]*DonorAggregate)
	for _, rec := range records {
		if rec.Amount <= 0 {
			continue
		}
		agg, ok := byDonor[rec.DonorID]
		if !ok {
			agg = &DonorAggregate{DonorID: rec.DonorID, LastGift: rec.CloseDate}
			byDonor[rec.DonorID] = agg
		}
		if rec.CloseDate.After(agg.LastGift) {
			agg.LastGift = rec.CloseDate
		}
		agg.Frequency++
		agg.Monetary += rec.Amount
	}

	out := make([]DonorAggregate, 0, len(byDonor))
	for _, agg := range byDonor {
		agg.RecencyDays = now.Sub(agg.LastGift).Hours() / hoursPerDay
		out = append(out, *agg)
	}

	// Map iteration order is random; sort so runs are reproducible.
	sort.Slice(out, func(i, j int) bool { return out[i].DonorID < out[j].DonorID })
	return out
}
