package rules

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jurisdiction-engine/internal/model"
)

func restoreTable(t *testing.T) {
	t.Helper()
	prev := table
	t.Cleanup(func() { table = prev })
}

func TestLoadWithoutRegistryKeepsBuiltin(t *testing.T) {
	restoreTable(t)
	t.Setenv("RULE_REGISTRY_URL", "")

	if err := Load(); err != nil {
		t.Fatalf("Load without a registry should succeed: %v", err)
	}
	if len(For(model.Federal, model.CategoryGrievanceFiling)) != 1 {
		t.Fatal("builtin table should remain active")
	}
}

func TestLoadReplacesTable(t *testing.T) {
	restoreTable(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rules" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rules":[{"jurisdiction":"CA-FED","ruleCategory":"grievance_filing","deadlineDays":20,"legalReference":"Canada Labour Code, RSC 1985, c L-2, s 240"}]}`))
	}))
	defer srv.Close()
	t.Setenv("RULE_REGISTRY_URL", srv.URL)

	if err := Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	matched := For(model.Federal, model.CategoryGrievanceFiling)
	if len(matched) != 1 || matched[0].DeadlineDays != 20 {
		t.Fatalf("expected registry rule with 20 days, got %+v", matched)
	}
}

func TestLoadRejectsBadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"server error", "", http.StatusInternalServerError},
		{"empty rule set", `{"rules":[]}`, http.StatusOK},
		{"unknown jurisdiction", `{"rules":[{"jurisdiction":"CA-XX","ruleCategory":"grievance_filing","deadlineDays":10,"legalReference":"x"}]}`, http.StatusOK},
		{"non-positive days", `{"rules":[{"jurisdiction":"CA-ON","ruleCategory":"grievance_filing","deadlineDays":0,"legalReference":"x"}]}`, http.StatusOK},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			restoreTable(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.code)
				w.Write([]byte(c.body))
			}))
			defer srv.Close()
			t.Setenv("RULE_REGISTRY_URL", srv.URL)

			if err := Load(); err == nil {
				t.Fatal("expected Load to fail")
			}
			// Builtin rules stay active after a failed load.
			if len(For(model.Federal, model.CategoryGrievanceFiling)) != 1 {
				t.Fatal("builtin table should remain active after failure")
			}
		})
	}
}
