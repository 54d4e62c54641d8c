package country

import "testing"

func TestStandardize_KnownAliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Tanzania", "Танзанія"},
		{"Танзания", "Танзанія"},
		{"Танзанія", "Танзанія"},
		{"  kenya  ", "Кенія"},
		{"NIGERIA", "Нігерія"},
		{"south africa", "ПАР"},
	}
	for _, tt := range tests {
		if got := Standardize(tt.raw); got != tt.want {
			t.Errorf("Standardize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStandardize_Idempotent(t *testing.T) {
	labels := []string{"Tanzania", "Танзанія", "kenya", "Atlantis", "", "  Ghana "}
	for _, l := range labels {
		once := Standardize(l)
		twice := Standardize(once)
		if once != twice {
			t.Errorf("Standardize not idempotent for %q: %q != %q", l, once, twice)
		}
	}
}

func TestStandardize_UnknownPassesThrough(t *testing.T) {
	if got := Standardize(" Atlantis "); got != "Atlantis" {
		t.Errorf("expected unknown label trimmed and unchanged, got %q", got)
	}
}

func TestInferFromCreativeID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"HO1TZ", "Танзанія"},
		{"HO2KE", "Кенія"},
		{"CREATIVE_NG", "Нігерія"},
		{"HO3", ""},        // no trailing letters
		{"HO1tz", ""},      // lowercase code is not a geo suffix
		{"HO1XX", ""},      // unknown code
		{"", ""},
	}
	for _, tt := range tests {
		if got := InferFromCreativeID(tt.id); got != tt.want {
			t.Errorf("InferFromCreativeID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestResolve_Precedence(t *testing.T) {
	// Reported label beats the identifier code.
	if got := Resolve("Kenya", "HO1TZ"); got != "Кенія" {
		t.Errorf("reported label should win, got %q", got)
	}
	// Identifier code fills in when the label is empty.
	if got := Resolve("", "HO1TZ"); got != "Танзанія" {
		t.Errorf("expected suffix inference, got %q", got)
	}
	if got := Resolve("   ", "HO2KE"); got != "Кенія" {
		t.Errorf("blank label should fall through to suffix, got %q", got)
	}
	// Fallback guarantees totality.
	if got := Resolve("", "HO3"); got != Fallback {
		t.Errorf("expected fallback %q, got %q", Fallback, got)
	}
}
