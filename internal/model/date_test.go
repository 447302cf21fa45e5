package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("expected %v, got %v", want, d)
	}
}

func TestParseDateLeapDay(t *testing.T) {
	if _, err := ParseDate("2024-02-29"); err != nil {
		t.Fatalf("2024-02-29 should parse: %v", err)
	}
	if _, err := ParseDate("2025-02-29"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("2025-02-29 should fail with ErrInvalidDate, got %v", err)
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"invalid-date",
		"2025-1-2",
		"2025/01/02",
		"2025-13-01",
		"2025-00-10",
		"2025-04-31",
		"2025-01-02T00:00:00Z",
		"",
	} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", s, err)
		}
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-12-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(d); got != "2026-12-31" {
		t.Fatalf("expected 2026-12-31, got %s", got)
	}
}

func TestJurisdictionTable(t *testing.T) {
	if len(Jurisdictions) != 14 {
		t.Fatalf("expected 14 jurisdictions, got %d", len(Jurisdictions))
	}

	fed, ok := LookupJurisdiction(Federal)
	if !ok {
		t.Fatal("expected CA-FED to exist")
	}
	if fed.Name != "Federal" || !fed.IsBilingual {
		t.Fatalf("unexpected federal record: %+v", fed)
	}

	qc, ok := LookupJurisdiction(Quebec)
	if !ok || !qc.IsBilingual {
		t.Fatalf("expected Quebec to be bilingual, got %+v", qc)
	}

	if ValidJurisdiction("CA-XX") {
		t.Fatal("CA-XX should not be a valid jurisdiction")
	}
}
