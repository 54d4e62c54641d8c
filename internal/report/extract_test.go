package report

import "testing"

const clicksHTML = `<html><body>
<p>Отчет за 15.04.2024</p>
<table>
<tr><th>Дата</th><th>Sub ID 5</th><th>Флаг страны</th><th>IP</th></tr>
<tr><td>15.04.2024</td><td>HO1TZ</td><td>Танзанія</td><td>1.2.3.4</td></tr>
<tr><td>15.04.2024</td><td>HO1TZ</td><td></td><td>1.2.3.5</td></tr>
<tr><td>15.04.2024</td><td>HO1TZ</td><td>Kenya</td><td>1.2.3.6</td></tr>
<tr><td>15.04.2024</td><td>HO2KE</td><td>Кенія</td><td>1.2.3.7</td></tr>
<tr><td>15.04.2024</td><td></td><td>Гана</td><td>1.2.3.8</td></tr>
<tr><td>15.04.2024</td></tr>
</table>
</body></html>`

const conversionsHTML = `<html><body>
<table>
<tr><td>Дата</td><td>СТАТУС</td><td>Sub ID 5</td><td>Страна</td></tr>
<tr><td>15.04.2024</td><td>lead</td><td>HO1TZ</td><td></td></tr>
<tr><td>15.04.2024</td><td> Sale </td><td>HO1TZ</td><td>Tanzania</td></tr>
<tr><td>15.04.2024</td><td>hold</td><td>HO1TZ</td><td>Ghana</td></tr>
<tr><td>15.04.2024</td><td>lead</td><td>HO3NG</td><td>Nigeria</td></tr>
<tr><td>15.04.2024</td><td>lead</td></tr>
</table>
</body></html>`

func TestExtract_Clicks(t *testing.T) {
	c := Extract(clicksHTML, RoleClicks)

	if got := c.Clicks["HO1TZ"]; got != 3 {
		t.Errorf("HO1TZ clicks = %d, want 3", got)
	}
	if got := c.Clicks["HO2KE"]; got != 1 {
		t.Errorf("HO2KE clicks = %d, want 1", got)
	}
	if len(c.Clicks) != 2 {
		t.Errorf("expected 2 creatives, got %d (%v)", len(c.Clicks), c.Clicks)
	}
	// First non-empty country wins for the clicks role.
	if got := c.Country["HO1TZ"]; got != "Танзанія" {
		t.Errorf("HO1TZ country = %q, want first non-empty cell", got)
	}
}

func TestExtract_Conversions(t *testing.T) {
	c := Extract(conversionsHTML, RoleConversions)

	if got := c.Leads["HO1TZ"]; got != 1 {
		t.Errorf("HO1TZ leads = %d, want 1", got)
	}
	// Status comparison trims and lowercases before the exact match.
	if got := c.Sales["HO1TZ"]; got != 1 {
		t.Errorf("HO1TZ sales = %d, want 1", got)
	}
	if got := c.Leads["HO3NG"]; got != 1 {
		t.Errorf("HO3NG leads = %d, want 1", got)
	}
	// "hold" rows count nothing but their country still applies: last non-empty wins.
	if got := c.Country["HO1TZ"]; got != "Ghana" {
		t.Errorf("HO1TZ country = %q, want last non-empty cell", got)
	}
	if got := c.Country["HO3NG"]; got != "Nigeria" {
		t.Errorf("HO3NG country = %q, want Nigeria", got)
	}
}

func TestExtract_MissingCreativeColumn(t *testing.T) {
	doc := `<table><tr><th>Дата</th><th>Страна</th></tr><tr><td>15.04.2024</td><td>Кенія</td></tr></table>`
	c := Extract(doc, RoleClicks)
	if len(c.Clicks) != 0 || len(c.Country) != 0 {
		t.Errorf("missing key column must yield empty counters, got %v %v", c.Clicks, c.Country)
	}
}

func TestExtract_MissingStatusColumn(t *testing.T) {
	doc := `<table><tr><th>Sub ID 5</th><th>Страна</th></tr><tr><td>HO1TZ</td><td>Кенія</td></tr></table>`
	c := Extract(doc, RoleConversions)
	if len(c.Leads) != 0 || len(c.Sales) != 0 || len(c.Country) != 0 {
		t.Error("conversions extraction without a status column must yield empty counters")
	}
}

func TestExtract_EmptyAndGarbageDocuments(t *testing.T) {
	for _, doc := range []string{"", "<html><body>no tables here</body></html>", "<table></table>"} {
		c := Extract(doc, RoleClicks)
		if len(c.Clicks) != 0 {
			t.Errorf("document %q: expected empty counters", doc)
		}
		c = Extract(doc, RoleConversions)
		if len(c.Leads) != 0 || len(c.Sales) != 0 {
			t.Errorf("document %q: expected empty counters", doc)
		}
	}
}
