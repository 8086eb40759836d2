package helpers_test

import (
	"testing"

	"coinadmin/helpers"
)

func TestNormalizeDateString(t *testing.T) {
	cases := map[string]string{
		"2025-03-05":                "2025-03-05",
		"2025-03-05T23:30:00Z":      "2025-03-05",
		"2025-03-06T01:00:00+03:00": "2025-03-05",
		"2025-03-05 14:00:00":       "2025-03-05",
		"1700000000":                "2023-11-14",
		"1700000000000":             "2023-11-14",
		"  2025-03-05  ":            "2025-03-05",
	}
	for raw, want := range cases {
		got, err := helpers.NormalizeDateString(raw)
		if err != nil {
			t.Fatalf("NormalizeDateString(%q) failed: %v", raw, err)
		}
		if got != want {
			t.Errorf("NormalizeDateString(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeDateStringIdempotent(t *testing.T) {
	first, err := helpers.NormalizeDateString("2025-03-06T01:00:00+03:00")
	if err != nil {
		t.Fatal(err)
	}
	second, err := helpers.NormalizeDateString(first)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("normalizing twice changed the value: %q -> %q", first, second)
	}
}

func TestNormalizeDateStringRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "not-a-date", "2025-13-01", "2025-02-30", "03/05/2025"} {
		if _, err := helpers.NormalizeDateString(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestNormalizeMonth(t *testing.T) {
	if got, err := helpers.NormalizeMonth(" 2025-07 "); err != nil || got != "2025-07" {
		t.Errorf("NormalizeMonth = %q, %v", got, err)
	}
	for _, raw := range []string{"", "2025", "2025-13", "July 2025"} {
		if _, err := helpers.NormalizeMonth(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
