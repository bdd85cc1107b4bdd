package handlers

import (
	"time"

	"relief-hub/app/domain"
)

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

// FeedRow is the feed projection of a help request: only the columns the
// dashboard table renders. The wider single-record shape stays on the
// detail endpoint.
type FeedRow struct {
	PublicID       string             `json:"public_id"`
	Title          string             `json:"title"`
	RequestType    domain.RequestType `json:"request_type"`
	Urgency        domain.Urgency     `json:"urgency"`
	PeopleAffected int                `json:"people_affected"`
	Latitude       float64            `json:"latitude"`
	Longitude      float64            `json:"longitude"`
	Status         domain.Status      `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewFeedRows projects help requests into the feed row shape
func NewFeedRows(requests []domain.HelpRequest) []FeedRow {
	rows := make([]FeedRow, 0, len(requests))
	for _, req := range requests {
		rows = append(rows, FeedRow{
			PublicID:       req.PublicID,
			Title:          req.Title,
			RequestType:    req.RequestType,
			Urgency:        req.Urgency,
			PeopleAffected: req.PeopleAffected,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			Status:         req.Status,
			CreatedAt:      req.CreatedAt,
		})
	}
	return rows
}

// FeedPartialResponse is the polling payload for the dashboard. It carries
// exactly what the rendered page shows so a poll can swap the KPI cards and
// rows table in place.
type FeedPartialResponse struct {
	KPIs       domain.KPIs       `json:"kpis"`
	Rows       []FeedRow         `json:"rows"`
	Pagination domain.Pagination `json:"pagination"`
}

// DashboardView is the template model for the dashboard page
type DashboardView struct {
	Criteria   domain.FilterCriteria
	BBox       string
	KPIs       domain.KPIs
	Rows       []domain.HelpRequest
	Pagination domain.Pagination
	Urgencies  []domain.Urgency
}

// ReportsView is the template model for the reports page
type ReportsView struct {
	Rollups    domain.Rollups
	WindowDays int
	Statuses   []domain.Status
	Urgencies  []domain.Urgency
}

// DetailView is the template model for the request detail page
type DetailView struct {
	Request domain.HelpRequest
}

// ErrorView is the template model for error pages
type ErrorView struct {
	Status  int
	Message string
}
