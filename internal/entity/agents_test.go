package entity

import (
	"strings"
	"testing"
	"time"
)

func TestResolveAgentUnknownFallsBack(t *testing.T) {
	got := ResolveAgent("no-such-agent")
	if got.ID != AgentAssistant {
		t.Errorf("ResolveAgent = %q, want the default assistant", got.ID)
	}
}

func TestResolveAgentKnown(t *testing.T) {
	for _, a := range Agents {
		if got := ResolveAgent(a.ID); got.Name != a.Name {
			t.Errorf("ResolveAgent(%q) = %q, want %q", a.ID, got.Name, a.Name)
		}
		if !a.ID.Valid() {
			t.Errorf("catalog agent %q reported invalid", a.ID)
		}
	}
	if AgentID("ghost").Valid() {
		t.Error("unknown id reported valid")
	}
}

func TestWelcomeMessage(t *testing.T) {
	msg := ResolveAgent(AgentFinancial).WelcomeMessage("Meal Kits")
	if !strings.Contains(msg, "Financial Analyst") {
		t.Errorf("welcome missing agent name: %q", msg)
	}
	if !strings.Contains(msg, `"Meal Kits"`) {
		t.Errorf("welcome missing idea title: %q", msg)
	}
}

func TestNewAnalysisFillsOmittedFields(t *testing.T) {
	now := time.Now().UTC()
	a := NewAnalysis("a-1", "idea-1", map[string]string{
		"problemAnalysis": "Present.",
		"targetMarket":    "",
	}, now)

	if a.ProblemAnalysis != "Present." {
		t.Errorf("ProblemAnalysis = %q", a.ProblemAnalysis)
	}
	if a.TargetMarket != AnalysisPending {
		t.Errorf("blank TargetMarket = %q, want pending sentinel", a.TargetMarket)
	}
	if a.FundingRequirements != AnalysisPending {
		t.Errorf("absent FundingRequirements = %q, want pending sentinel", a.FundingRequirements)
	}
	if a.CreatedAt != now {
		t.Errorf("CreatedAt = %v", a.CreatedAt)
	}
}

func TestFieldMapCoversAllFields(t *testing.T) {
	a := NewAnalysis("a-1", "idea-1", nil, time.Now())
	m := a.FieldMap()
	for _, name := range AnalysisFields {
		if _, ok := m[name]; !ok {
			t.Errorf("FieldMap missing %q", name)
		}
	}
	if len(m) != len(AnalysisFields) {
		t.Errorf("FieldMap has %d entries, want %d", len(m), len(AnalysisFields))
	}
}
