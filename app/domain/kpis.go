package domain

import (
	"math"
	"time"
)

// KPIs are the dashboard summary numbers. They are computed over the rows of
// the current page, not the full filtered set: the dashboard tiles describe
// what the operator is looking at right now, and the partial-poll response
// must report the exact same numbers as the rendered page.
type KPIs struct {
	Total   int     `json:"total"`
	Active  int     `json:"active"`
	Last24h int     `json:"last24h"`
	Avg     float64 `json:"avg"`
}

// ComputeKPIs derives the page-level KPIs from an already-fetched window.
// Pure function; now is injected so polls and renders agree on the 24h cut.
func ComputeKPIs(rows []HelpRequest, now time.Time) KPIs {
	kpis := KPIs{Total: len(rows)}

	sumPeople := 0
	for _, r := range rows {
		if r.Status == StatusActive {
			kpis.Active++
		}
		if now.Sub(r.CreatedAt) < 24*time.Hour {
			kpis.Last24h++
		}
		sumPeople += r.PeopleAffected
	}

	if len(rows) > 0 {
		avg := float64(sumPeople) / float64(len(rows))
		kpis.Avg = math.Round(avg*10) / 10
	}

	return kpis
}

// FeedResult bundles one page of the public feed with its derived metadata
type FeedResult struct {
	Rows       []HelpRequest
	Total      int
	KPIs       KPIs
	Pagination Pagination
}
