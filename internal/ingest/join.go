package ingest

import (
	"sort"

	"CreativeSentinel/internal/country"
	"CreativeSentinel/internal/metrics"
	"CreativeSentinel/internal/model"
	"CreativeSentinel/internal/report"
)

// Join merges the clicks and conversions counters into one RawTotals per
// creative. The key set is the union of both inputs. Country precedence runs
// clicks -> leads -> sales, later non-empty values overwriting earlier ones,
// so conversions data outranks clicks data.
func Join(clicks, conversions report.Counters) map[string]model.RawTotals {
	totals := make(map[string]model.RawTotals)

	for id, n := range clicks.Clicks {
		t := totals[id]
		t.Clicks = n
		t.Country = clicks.Country[id]
		totals[id] = t
	}

	for id, n := range conversions.Leads {
		t := totals[id]
		t.Leads = n
		if c := conversions.Country[id]; c != "" {
			t.Country = c
		}
		totals[id] = t
	}

	for id, n := range conversions.Sales {
		t := totals[id]
		t.Sales = n
		if c := conversions.Country[id]; c != "" {
			t.Country = c
		}
		totals[id] = t
	}

	return totals
}

// BuildRecords turns joined totals into finished metric records for one date,
// sorted for display. Spend starts at 0 and is user-supplied after ingestion.
func BuildRecords(totals map[string]model.RawTotals, date, sub1 string) []model.CreativeMetric {
	records := make([]model.CreativeMetric, 0, len(totals))
	for id, t := range totals {
		if id == "" {
			continue
		}
		m := model.CreativeMetric{
			CreativeID:    id,
			Sub1:          sub1,
			Country:       country.Resolve(t.Country, id),
			Installs:      t.Clicks,
			Registrations: t.Leads + t.Sales,
			Deposits:      t.Sales,
			Date:          date,
		}
		metrics.Apply(&m)
		records = append(records, m)
	}
	SortRecords(records)
	return records
}

// SortRecords orders records by country then creative id, with the home
// market always first.
func SortRecords(records []model.CreativeMetric) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Country != b.Country {
			if a.Country == country.Fallback {
				return true
			}
			if b.Country == country.Fallback {
				return false
			}
			return a.Country < b.Country
		}
		return a.CreativeID < b.CreativeID
	})
}
