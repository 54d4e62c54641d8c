package ingest

import (
	"testing"

	"CreativeSentinel/internal/report"
)

func TestJoin_UnionOfKeys(t *testing.T) {
	clicks := report.NewCounters()
	clicks.Clicks["A"] = 2
	clicks.Clicks["B"] = 1

	conversions := report.NewCounters()
	conversions.Leads["B"] = 1
	conversions.Sales["C"] = 3

	totals := Join(clicks, conversions)
	if len(totals) != 3 {
		t.Fatalf("expected union of 3 keys, got %d: %v", len(totals), totals)
	}
	if totals["A"].Clicks != 2 || totals["A"].Leads != 0 || totals["A"].Sales != 0 {
		t.Errorf("A = %+v", totals["A"])
	}
	if totals["B"].Clicks != 1 || totals["B"].Leads != 1 {
		t.Errorf("B = %+v", totals["B"])
	}
	if totals["C"].Clicks != 0 || totals["C"].Sales != 3 {
		t.Errorf("C = %+v", totals["C"])
	}
}

func TestJoin_EmptyInputs(t *testing.T) {
	totals := Join(report.NewCounters(), report.NewCounters())
	if len(totals) != 0 {
		t.Errorf("expected empty join, got %v", totals)
	}
}

func TestJoin_ConversionsCountryWins(t *testing.T) {
	clicks := report.NewCounters()
	clicks.Clicks["HO1TZ"] = 3
	clicks.Country["HO1TZ"] = "Танзанія"

	conversions := report.NewCounters()
	conversions.Sales["HO1TZ"] = 1
	conversions.Country["HO1TZ"] = "Tanzania"

	totals := Join(clicks, conversions)
	if totals["HO1TZ"].Country != "Tanzania" {
		t.Errorf("conversions country should overwrite clicks country, got %q", totals["HO1TZ"].Country)
	}
}

func TestBuildRecords_Scenario(t *testing.T) {
	// Three clicks and one sale for HO1TZ, countries reported by both extracts.
	clicks := report.NewCounters()
	clicks.Clicks["HO1TZ"] = 3
	clicks.Country["HO1TZ"] = "Танзанія"

	conversions := report.NewCounters()
	conversions.Sales["HO1TZ"] = 1
	conversions.Country["HO1TZ"] = "Tanzania"

	records := BuildRecords(Join(clicks, conversions), "15.04.2024", "holomah")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Installs != 3 {
		t.Errorf("installs = %d, want 3", r.Installs)
	}
	if r.Registrations != 1 {
		t.Errorf("registrations = %d, want 1", r.Registrations)
	}
	if r.Deposits != 1 {
		t.Errorf("deposits = %d, want 1", r.Deposits)
	}
	if r.Country != "Танзанія" {
		t.Errorf("country = %q, want standardized conversions country", r.Country)
	}
	if r.Spend != 0 || r.CPADep != 0 {
		t.Errorf("spend not yet set: spend=%v cpaDep=%v, want 0/0", r.Spend, r.CPADep)
	}
	if r.Sub1 != "holomah" || r.Date != "15.04.2024" {
		t.Errorf("tagging wrong: %+v", r)
	}
}

func TestBuildRecords_CountryFallbacks(t *testing.T) {
	clicks := report.NewCounters()
	clicks.Clicks["HO2KE"] = 1 // no reported country, geo code in the id
	clicks.Clicks["HO3"] = 1   // nothing to go on at all

	records := BuildRecords(Join(clicks, report.NewCounters()), "15.04.2024", "holomah")
	byID := map[string]string{}
	for _, r := range records {
		byID[r.CreativeID] = r.Country
	}
	if byID["HO2KE"] != "Кенія" {
		t.Errorf("HO2KE country = %q, want inferred from id suffix", byID["HO2KE"])
	}
	if byID["HO3"] != "Танзанія" {
		t.Errorf("HO3 country = %q, want home market fallback", byID["HO3"])
	}
}

func TestSortRecords_HomeMarketFirst(t *testing.T) {
	clicks := report.NewCounters()
	clicks.Clicks["K1KE"] = 1
	clicks.Country["K1KE"] = "Кенія"
	clicks.Clicks["G1GH"] = 1
	clicks.Country["G1GH"] = "Гана"
	clicks.Clicks["T2TZ"] = 1
	clicks.Country["T2TZ"] = "Танзанія"
	clicks.Clicks["T1TZ"] = 1
	clicks.Country["T1TZ"] = "Танзанія"

	records := BuildRecords(Join(clicks, report.NewCounters()), "15.04.2024", "holomah")
	got := make([]string, len(records))
	for i, r := range records {
		got[i] = r.CreativeID
	}
	want := []string{"T1TZ", "T2TZ", "G1GH", "K1KE"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
