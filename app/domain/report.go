package domain

import "time"

// DefaultReportWindowDays is the reporting window used by the reports view
const DefaultReportWindowDays = 14

// DailyCount is one point of the daily series: requests created on Date
// (a calendar day) per status.
type DailyCount struct {
	Date      string `json:"date"`
	Active    int    `json:"active"`
	Withdrawn int    `json:"withdrawn"`
	Resolved  int    `json:"resolved"`
}

// Rollups are the grouped aggregates shown on the reports view. ByStatus and
// ByUrgency cover the entire public view; DailySeries covers the requested
// window, densely populated (a day with no rows still appears with zeros).
type Rollups struct {
	Total       int             `json:"total"`
	ByStatus    map[Status]int  `json:"by_status"`
	ByUrgency   map[Urgency]int `json:"by_urgency"`
	DailySeries []DailyCount    `json:"daily_series"`
}

// EmptyRollups returns a zeroed rollup set with every known status and
// urgency key present and a dense windowDays-long series ending today.
// Also the degraded value when rollup reads fail.
func EmptyRollups(windowDays int, now time.Time) Rollups {
	byStatus := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		byStatus[s] = 0
	}
	byUrgency := make(map[Urgency]int, len(Urgencies))
	for _, u := range Urgencies {
		byUrgency[u] = 0
	}

	series := make([]DailyCount, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		series = append(series, DailyCount{Date: day.Format("2006-01-02")})
	}

	return Rollups{
		ByStatus:    byStatus,
		ByUrgency:   byUrgency,
		DailySeries: series,
	}
}
