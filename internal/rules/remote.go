package rules

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"jurisdiction-engine/internal/model"
)

// Load optionally replaces the builtin rule table with one served by an
// external rule registry. The fetch happens once, before the server starts;
// rule editing at runtime is not supported, so after Load returns the table
// is immutable. Any failure leaves the builtin table in place.
func Load() error {
	registryURL := os.Getenv("RULE_REGISTRY_URL")
	if registryURL == "" {
		return nil
	}

	client := &http.Client{
		Timeout: 2 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	resp, err := client.Get(registryURL + "/rules")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("rule registry returned status %d", resp.StatusCode)
	}

	var payload struct {
		Rules []model.DeadlineRule `json:"rules"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	if len(payload.Rules) == 0 {
		return fmt.Errorf("rule registry returned no rules")
	}

	for _, r := range payload.Rules {
		if !model.ValidJurisdiction(r.Jurisdiction) {
			return fmt.Errorf("rule registry: %w: %q", model.ErrInvalidJurisdiction, r.Jurisdiction)
		}
		if r.DeadlineDays <= 0 {
			return fmt.Errorf("rule registry: %w: deadlineDays %d for %s/%s",
				model.ErrInvalidArgument, r.DeadlineDays, r.Jurisdiction, r.RuleCategory)
		}
	}

	table = payload.Rules
	return nil
}
