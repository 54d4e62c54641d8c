package ingest

import (
	"context"
	"fmt"
	"time"

	"CreativeSentinel/internal/model"
	"CreativeSentinel/internal/report"
)

// Analyzer orchestrates report fetching, extraction, joining and metric
// computation for one pair of report URLs.
type Analyzer struct {
	Fetcher report.Fetcher
	Sub1    string
}

// NewAnalyzer creates a new Analyzer. sub1 is the channel tag stamped on
// every produced record.
func NewAnalyzer(fetcher report.Fetcher, sub1 string) *Analyzer {
	return &Analyzer{Fetcher: fetcher, Sub1: sub1}
}

// Result is the outcome of one analyze run: a finished daily record set and
// the date label detected in the clicks report.
type Result struct {
	Date    string                 `json:"date"`
	Records []model.CreativeMetric `json:"records"`
}

// Analyze fetches both reports, extracts and joins them, and computes the
// per-creative metrics. Extraction never fails; only fetch errors surface.
func (a *Analyzer) Analyze(ctx context.Context, clicksURL, conversionsURL string) (*Result, error) {
	clicksHTML, err := a.Fetcher.FetchHTML(ctx, clicksURL)
	if err != nil {
		return nil, fmt.Errorf("fetch clicks report: %w", err)
	}
	conversionsHTML, err := a.Fetcher.FetchHTML(ctx, conversionsURL)
	if err != nil {
		return nil, fmt.Errorf("fetch conversions report: %w", err)
	}

	date := report.DetectDate(clicksHTML, time.Now())

	clicks := report.Extract(clicksHTML, report.RoleClicks)
	conversions := report.Extract(conversionsHTML, report.RoleConversions)

	records := BuildRecords(Join(clicks, conversions), date, a.Sub1)
	return &Result{Date: date, Records: records}, nil
}
