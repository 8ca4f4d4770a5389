package entity

import "time"

// Idea is a user-submitted startup concept. Immutable after creation;
// deleting an idea cascades to its analysis and chat messages.
type Idea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Analysis is the seven-field business assessment derived from an idea.
// At most one analysis exists per idea; saving replaces any prior record
// for the same IdeaID. All seven fields are written together, never
// partially.
type Analysis struct {
	ID                  string    `json:"id"`
	IdeaID              string    `json:"ideaId"`
	ProblemAnalysis     string    `json:"problemAnalysis"`
	TargetMarket        string    `json:"targetMarket"`
	BusinessModel       string    `json:"businessModel"`
	LegalConsiderations string    `json:"legalConsiderations"`
	GrowthStrategy      string    `json:"growthStrategy"`
	CompetitorAnalysis  string    `json:"competitorAnalysis"`
	FundingRequirements string    `json:"fundingRequirements"`
	CreatedAt           time.Time `json:"createdAt"`
}

// AnalysisFields enumerates the analysis field names in their canonical
// order. The same names key the generative response JSON and drive the
// fallback extraction.
var AnalysisFields = []string{
	"problemAnalysis",
	"targetMarket",
	"businessModel",
	"legalConsiderations",
	"growthStrategy",
	"competitorAnalysis",
	"fundingRequirements",
}

// AnalysisPending is the value a field takes when the generative
// response omitted it entirely.
const AnalysisPending = "Analysis in progress"

// NewAnalysis builds an Analysis from an extracted field map, filling
// any omitted field with the pending sentinel so a record is never
// half-populated.
func NewAnalysis(id, ideaID string, fields map[string]string, createdAt time.Time) Analysis {
	get := func(name string) string {
		if v, ok := fields[name]; ok && v != "" {
			return v
		}
		return AnalysisPending
	}

	return Analysis{
		ID:                  id,
		IdeaID:              ideaID,
		ProblemAnalysis:     get("problemAnalysis"),
		TargetMarket:        get("targetMarket"),
		BusinessModel:       get("businessModel"),
		LegalConsiderations: get("legalConsiderations"),
		GrowthStrategy:      get("growthStrategy"),
		CompetitorAnalysis:  get("competitorAnalysis"),
		FundingRequirements: get("fundingRequirements"),
		CreatedAt:           createdAt,
	}
}

// FieldMap returns the seven analysis sections keyed by field name.
func (a *Analysis) FieldMap() map[string]string {
	return map[string]string{
		"problemAnalysis":     a.ProblemAnalysis,
		"targetMarket":        a.TargetMarket,
		"businessModel":       a.BusinessModel,
		"legalConsiderations": a.LegalConsiderations,
		"growthStrategy":      a.GrowthStrategy,
		"competitorAnalysis":  a.CompetitorAnalysis,
		"fundingRequirements": a.FundingRequirements,
	}
}

// ChatMessage is one turn in a per-(idea, agent) conversation.
// Conversations are append-only and read back ordered by Timestamp.
type ChatMessage struct {
	ID        string    `json:"id"`
	IdeaID    string    `json:"ideaId"`
	AgentID   AgentID   `json:"agentId"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurn is the reduced view of a message handed to the generative
// endpoint as conversation history.
type ChatTurn struct {
	Content string
	IsUser  bool
}
