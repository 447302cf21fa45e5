package rules

import (
	"strings"
	"testing"

	"jurisdiction-engine/internal/model"
)

func TestFederalGrievanceFiling(t *testing.T) {
	matched := For(model.Federal, model.CategoryGrievanceFiling)
	if len(matched) != 1 {
		t.Fatalf("expected 1 federal grievance rule, got %d", len(matched))
	}
	r := matched[0]
	if r.DeadlineDays != 25 {
		t.Fatalf("expected 25 business days, got %d", r.DeadlineDays)
	}
	if !strings.Contains(r.LegalReference, "240") {
		t.Fatalf("expected citation of s 240, got %q", r.LegalReference)
	}
	if r.ThresholdPercent != nil {
		t.Fatal("grievance rules carry no vote threshold")
	}
}

func TestAllJurisdictionsHaveRules(t *testing.T) {
	for _, j := range model.Jurisdictions {
		matched := For(j.Code, "")
		if len(matched) < 4 {
			t.Fatalf("expected at least 4 rules for %s, got %d", j.Code, len(matched))
		}
	}
}

func TestManitobaStrikeVoteThreshold(t *testing.T) {
	matched := For(model.Manitoba, model.CategoryStrikeVote)
	if len(matched) != 1 {
		t.Fatalf("expected 1 Manitoba strike vote rule, got %d", len(matched))
	}
	if matched[0].ThresholdPercent == nil || *matched[0].ThresholdPercent != 65 {
		t.Fatalf("expected 65%% threshold, got %+v", matched[0].ThresholdPercent)
	}
}

func TestSaskatchewanSpecialStrikeVoteRule(t *testing.T) {
	matched := For(model.Saskatchewan, model.CategoryStrikeVote)
	if len(matched) != 2 {
		t.Fatalf("expected general and special rules, got %d", len(matched))
	}
	// General rule first, special 45% rule second.
	if matched[0].ThresholdPercent == nil || *matched[0].ThresholdPercent != 50 {
		t.Fatalf("expected general 50%% rule first, got %+v", matched[0].ThresholdPercent)
	}
	if matched[1].ThresholdPercent == nil || *matched[1].ThresholdPercent != 45 {
		t.Fatalf("expected special 45%% rule second, got %+v", matched[1].ThresholdPercent)
	}
}

func TestUnknownLookupsYieldEmpty(t *testing.T) {
	if got := For("CA-XX", ""); len(got) != 0 {
		t.Fatalf("expected empty result for unknown jurisdiction, got %d rules", len(got))
	}
	if got := For(model.Ontario, "no_such_category"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown category, got %d rules", len(got))
	}
}
