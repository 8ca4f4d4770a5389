package analysis

import (
	"strings"
	"testing"

	"github.com/ideasage/backend/internal/entity"
)

func TestExtractFieldsStructured(t *testing.T) {
	raw := `Here is the analysis you asked for:
{
  "problemAnalysis": "The problem is real.",
  "targetMarket": "Young professionals.",
  "businessModel": "Subscriptions.",
  "legalConsiderations": "GDPR applies.",
  "growthStrategy": "Product-led.",
  "competitorAnalysis": "Fragmented field.",
  "fundingRequirements": "$500K seed."
}
Let me know if you need more detail.`

	got := ExtractFields(raw)

	if got.Tier != entity.TierStructured {
		t.Fatalf("Tier = %q, want structured", got.Tier)
	}
	if got.Fields["targetMarket"] != "Young professionals." {
		t.Errorf("targetMarket = %q", got.Fields["targetMarket"])
	}
	if got.Degraded() {
		t.Error("Degraded() = true for a clean structured parse")
	}
	for _, name := range entity.AnalysisFields {
		if got.Origins[name] != entity.OriginStructured {
			t.Errorf("origin of %s = %q, want structured", name, got.Origins[name])
		}
	}
}

func TestExtractFieldsRecoveredFromHeadings(t *testing.T) {
	raw := "Problem Analysis:\nThe problem is real and pressing.\n\n" +
		"Target Market\nfoo bar\n\n" +
		"businessModel\nSubscriptions with a free tier.\n\n" +
		"Some closing remarks."

	got := ExtractFields(raw)

	if got.Tier != entity.TierRecovered {
		t.Fatalf("Tier = %q, want recovered", got.Tier)
	}
	if got.Fields["targetMarket"] != "foo bar" {
		t.Errorf("targetMarket = %q, want %q", got.Fields["targetMarket"], "foo bar")
	}
	if got.Fields["problemAnalysis"] != "The problem is real and pressing." {
		t.Errorf("problemAnalysis = %q", got.Fields["problemAnalysis"])
	}
	if got.Fields["businessModel"] != "Subscriptions with a free tier." {
		t.Errorf("businessModel = %q", got.Fields["businessModel"])
	}
	if got.Origins["targetMarket"] != entity.OriginRecovered {
		t.Errorf("origin of targetMarket = %q, want recovered", got.Origins["targetMarket"])
	}
}

func TestExtractFieldsMissingPlaceholder(t *testing.T) {
	raw := "Target Market\nClimbers and gym owners.\n\nNothing else here."

	got := ExtractFields(raw)

	if got.Fields["fundingRequirements"] != "No fundingRequirements provided" {
		t.Errorf("fundingRequirements = %q, want placeholder", got.Fields["fundingRequirements"])
	}
	if got.Origins["fundingRequirements"] != entity.OriginMissing {
		t.Errorf("origin of fundingRequirements = %q, want missing", got.Origins["fundingRequirements"])
	}
	if got.LowConfidence() {
		t.Error("LowConfidence() = true with one recovered field")
	}
}

func TestExtractFieldsLowConfidence(t *testing.T) {
	got := ExtractFields("The model rambled about something else entirely.")

	if got.Tier != entity.TierRecovered {
		t.Fatalf("Tier = %q, want recovered", got.Tier)
	}
	if !got.LowConfidence() {
		t.Error("LowConfidence() = false when no field was located")
	}
	for _, name := range entity.AnalysisFields {
		if !strings.HasPrefix(got.Fields[name], "No ") {
			t.Errorf("%s = %q, want placeholder", name, got.Fields[name])
		}
	}
}

func TestExtractFieldsMalformedJSONFallsBack(t *testing.T) {
	// Braces present but the object is broken, so tier 1 fails and the
	// heading scan takes over.
	raw := `{ "problemAnalysis": "truncated...
Growth Strategy
Double down on referrals.

`

	got := ExtractFields(raw)

	if got.Tier != entity.TierRecovered {
		t.Fatalf("Tier = %q, want recovered", got.Tier)
	}
	if got.Fields["growthStrategy"] != "Double down on referrals." {
		t.Errorf("growthStrategy = %q", got.Fields["growthStrategy"])
	}
}

func TestExtractFieldsIgnoresUnknownKeys(t *testing.T) {
	raw := `{"problemAnalysis": "Real.", "commentary": "I added this."}`

	got := ExtractFields(raw)

	if got.Tier != entity.TierStructured {
		t.Fatalf("Tier = %q, want structured", got.Tier)
	}
	if _, ok := got.Fields["commentary"]; ok {
		t.Error("unknown key survived extraction")
	}
	if got.Origins["targetMarket"] != entity.OriginMissing {
		t.Errorf("origin of absent targetMarket = %q, want missing", got.Origins["targetMarket"])
	}
}

func TestSplitCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"problemAnalysis", "problem Analysis"},
		{"targetMarket", "target Market"},
		{"fundingRequirements", "funding Requirements"},
	}
	for _, tt := range tests {
		if got := splitCamelCase(tt.in); got != tt.want {
			t.Errorf("splitCamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
