package engine

import (
	"errors"
	"strings"
	"testing"

	"jurisdiction-engine/internal/model"
)

func TestResolveFederalGrievanceDeadline(t *testing.T) {
	result, err := ResolveDeadline(model.Federal, model.CategoryGrievanceFiling, "2025-01-02", model.ModeDetailed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Rule.DeadlineDays != 25 {
		t.Fatalf("expected 25 deadline days, got %d", result.Rule.DeadlineDays)
	}
	if !strings.Contains(result.Rule.LegalReference, "240") {
		t.Fatalf("expected citation of s 240, got %q", result.Rule.LegalReference)
	}
	// 25 business days from Thursday Jan 2, skipping weekends.
	if result.DeadlineDate != "2025-02-06" {
		t.Fatalf("expected deadline 2025-02-06, got %s", result.DeadlineDate)
	}
	if result.DeadlineDate <= "2025-01-02" {
		t.Fatal("deadline must be strictly after the start date")
	}
}

func TestResolveSimpleMode(t *testing.T) {
	result, err := ResolveDeadline(model.Ontario, model.CategoryGrievanceFiling, "2025-02-01", model.ModeSimple)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DeadlineDate == "" {
		t.Fatal("expected a deadline date")
	}

	// An absent mode means simple.
	again, err := ResolveDeadline(model.Ontario, model.CategoryGrievanceFiling, "2025-02-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.DeadlineDate != result.DeadlineDate {
		t.Fatalf("expected %s, got %s", result.DeadlineDate, again.DeadlineDate)
	}
}

func TestResolveGeneralRuleWinsOverSpecial(t *testing.T) {
	result, err := ResolveDeadline(model.Saskatchewan, model.CategoryStrikeVote, "2025-03-03", model.ModeDetailed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Rule.ThresholdPercent == nil || *result.Rule.ThresholdPercent != 50 {
		t.Fatalf("expected the general 50%% rule, got %+v", result.Rule.ThresholdPercent)
	}
}

func TestResolveErrors(t *testing.T) {
	if _, err := ResolveDeadline("CA-XX", model.CategoryGrievanceFiling, "2025-01-02", model.ModeSimple); !errors.Is(err, model.ErrInvalidJurisdiction) {
		t.Fatalf("expected ErrInvalidJurisdiction, got %v", err)
	}
	if _, err := ResolveDeadline(model.Federal, model.CategoryGrievanceFiling, "invalid-date", model.ModeSimple); !errors.Is(err, model.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if _, err := ResolveDeadline(model.Federal, "no_such_category", "2025-01-02", model.ModeSimple); !errors.Is(err, model.ErrRuleNotFound) {
		t.Fatalf("expected ErrRuleNotFound, got %v", err)
	}
	if _, err := ResolveDeadline(model.Federal, model.CategoryGrievanceFiling, "2025-01-02", "verbose"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown mode, got %v", err)
	}
}

func TestResolveIdempotent(t *testing.T) {
	first, err := ResolveDeadline(model.Quebec, model.CategoryGrievanceFiling, "2025-06-20", model.ModeDetailed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ResolveDeadline(model.Quebec, model.CategoryGrievanceFiling, "2025-06-20", model.ModeDetailed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.DeadlineDate != second.DeadlineDate {
		t.Fatalf("expected identical deadlines, got %s vs %s", first.DeadlineDate, second.DeadlineDate)
	}
}
