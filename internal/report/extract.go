package report

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Role selects which report layout the extractor expects.
type Role string

const (
	RoleClicks      Role = "clicks"
	RoleConversions Role = "conversions"
)

// Header phrases per role. Columns are located by case-insensitive substring
// match against the header row, never by position: the tracker reorders and
// adds columns between exports.
var (
	creativeHeaders = []string{"sub id 5"}
	countryHeaders  = []string{"страна", "флаг страны"}
	statusHeaders   = []string{"статус"}
)

// Counters holds per-creative counts extracted from one report document.
type Counters struct {
	Clicks  map[string]int
	Leads   map[string]int
	Sales   map[string]int
	Country map[string]string
}

// NewCounters returns an empty counter set.
func NewCounters() Counters {
	return Counters{
		Clicks:  make(map[string]int),
		Leads:   make(map[string]int),
		Sales:   make(map[string]int),
		Country: make(map[string]string),
	}
}

// Extract parses one HTML report into per-creative counters. It degrades
// gracefully: a missing key column or an unusable document yields empty
// counters, and malformed rows are skipped without aborting the scan.
func Extract(htmlDoc string, role Role) Counters {
	c := NewCounters()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlDoc))
	if err != nil {
		log.Printf("[WARN] parse %s report: %v", role, err)
		return c
	}

	rows := doc.Find("tr")
	if rows.Length() == 0 {
		return c
	}

	// Row 0 is the header row.
	var headers []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})

	idIdx := findColumn(headers, creativeHeaders)
	if idIdx == -1 {
		return c
	}
	countryIdx := findColumn(headers, countryHeaders)

	statusIdx := -1
	if role == RoleConversions {
		statusIdx = findColumn(headers, statusHeaders)
		if statusIdx == -1 {
			return c
		}
	}

	// Rows shorter than the highest referenced column are skipped.
	minCells := idIdx
	if role == RoleConversions {
		if statusIdx > minCells {
			minCells = statusIdx
		}
		if countryIdx > minCells {
			minCells = countryIdx
		}
	}

	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= minCells {
			return
		}
		creativeID := strings.TrimSpace(cells.Eq(idIdx).Text())
		if creativeID == "" {
			return
		}

		switch role {
		case RoleClicks:
			c.Clicks[creativeID]++
			if countryIdx != -1 {
				if _, seen := c.Country[creativeID]; !seen {
					if v := strings.TrimSpace(cells.Eq(countryIdx).Text()); v != "" {
						c.Country[creativeID] = v
					}
				}
			}

		case RoleConversions:
			status := strings.ToLower(strings.TrimSpace(cells.Eq(statusIdx).Text()))
			switch status {
			case "lead":
				c.Leads[creativeID]++
			case "sale":
				c.Sales[creativeID]++
			}
			// Conversions data outranks clicks data: last non-empty wins.
			if countryIdx != -1 {
				if v := strings.TrimSpace(cells.Eq(countryIdx).Text()); v != "" {
					c.Country[creativeID] = v
				}
			}
		}
	})

	return c
}

// findColumn returns the index of the first header cell containing any of the
// candidate phrases.
func findColumn(headers []string, phrases []string) int {
	for i, h := range headers {
		for _, p := range phrases {
			if strings.Contains(h, p) {
				return i
			}
		}
	}
	return -1
}
