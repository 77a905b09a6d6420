package domain

import "time"

// AnalyticsSummary is the optional aggregate the backend may expose. Not
// every deployment has the route, so all fields are best-effort.
type AnalyticsSummary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	AvgRating    float64 `json:"avgRating"`
}

type DayStats struct {
	Streams int
	Viewers int
	Revenue float64
}

type SellerStats struct {
	TotalStreams int
	TotalViewers int
	TotalRevenue float64
	AvgRating    float64
	Today        DayStats
}

// ComputeSellerStats aggregates the seller dashboard figures from the
// seller's streams, preferring backend analytics totals when present and
// falling back to per-stream metrics otherwise.
func ComputeSellerStats(streams []Stream, analytics AnalyticsSummary, now time.Time) SellerStats {
	stats := SellerStats{
		TotalStreams: len(streams),
		AvgRating:    analytics.AvgRating,
	}

	var metricRevenue float64
	for _, s := range streams {
		stats.TotalViewers += s.CurrentParticipants
		metricRevenue += s.Metrics.Revenue

		if s.StartedAt != nil && sameDay(*s.StartedAt, now) {
			stats.Today.Streams++
			stats.Today.Viewers += s.CurrentParticipants
			stats.Today.Revenue += s.Metrics.Revenue
		}
	}

	stats.TotalRevenue = analytics.TotalRevenue
	if stats.TotalRevenue == 0 {
		stats.TotalRevenue = metricRevenue
	}
	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
