package entity

import "fmt"

// AgentID identifies one of the fixed conversational personas.
type AgentID string

const (
	AgentAssistant   AgentID = "assistant"
	AgentPitch       AgentID = "pitch"
	AgentFinancial   AgentID = "financial"
	AgentMarket      AgentID = "market"
	AgentLegal       AgentID = "legal"
	AgentGrowth      AgentID = "growth"
	AgentFundraising AgentID = "fundraising"
)

// Agent is a persona used to condition chat requests. Persona is the
// behavioral instruction sent as the system turn; Description is the
// user-facing blurb (also woven into the welcome message).
type Agent struct {
	ID          AgentID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Persona     string  `json:"-"`
}

// Agents is the closed persona catalog, in display order.
var Agents = []Agent{
	{
		ID:          AgentAssistant,
		Name:        "Personal Assistant",
		Description: "Your go-to resource for summarizing insights and answering general questions about your idea.",
		Persona:     "You are a helpful AI assistant that provides clear, concise responses about startup ideas. Focus on giving balanced, practical advice.",
	},
	{
		ID:          AgentPitch,
		Name:        "Pitch Expert",
		Description: "Perfect your pitch for investors, customers, and partners with expert guidance on messaging and structure.",
		Persona:     "You are a Pitch Expert specialized in helping founders craft compelling pitches. Focus on messaging, storytelling, and presentation techniques.",
	},
	{
		ID:          AgentFinancial,
		Name:        "Financial Analyst",
		Description: "Get detailed advice on financial projections, pricing strategies, and business model optimization.",
		Persona:     "You are a Financial Analyst who helps founders with business models, pricing strategies, financial projections, and funding plans. Be specific and practical.",
	},
	{
		ID:          AgentMarket,
		Name:        "Market Researcher",
		Description: "Dive deep into market trends, customer segments, and competitive landscape analysis.",
		Persona:     "You are a Market Research Specialist who analyzes target customers, market sizes, trends, and competitive landscapes. Provide data-driven insights.",
	},
	{
		ID:          AgentLegal,
		Name:        "Legal Consultant",
		Description: "Navigate legal considerations, regulatory requirements, and intellectual property protection.",
		Persona:     "You are a Legal Consultant who helps founders navigate regulatory requirements, intellectual property, and compliance issues. Be thorough but accessible.",
	},
	{
		ID:          AgentGrowth,
		Name:        "Growth Strategist",
		Description: "Plan effective customer acquisition, retention strategies, and scaling approaches.",
		Persona:     "You are a Growth Strategist focused on customer acquisition, retention, and scaling strategies. Provide actionable, measurable advice.",
	},
	{
		ID:          AgentFundraising,
		Name:        "Fundraising Coach",
		Description: "Optimize your fundraising strategy with guidance on investor targeting and pitch preparation.",
		Persona:     "You are a Fundraising Coach who helps founders attract investors. Focus on fundraising strategies, investor relationships, and pitch refinement.",
	},
}

// ResolveAgent maps an identifier to its persona. Unknown identifiers
// fall back to the default assistant rather than failing, so a stale
// agent id never breaks a conversation.
func ResolveAgent(id AgentID) Agent {
	for _, a := range Agents {
		if a.ID == id {
			return a
		}
	}
	return Agents[0]
}

// Valid reports whether the identifier names a known persona.
func (id AgentID) Valid() bool {
	for _, a := range Agents {
		if a.ID == id {
			return true
		}
	}
	return false
}

// WelcomeMessage is the synthesized first message of an empty
// conversation, persisted like any other agent message.
func (a Agent) WelcomeMessage(ideaTitle string) string {
	return fmt.Sprintf("Hi there! I'm your %s. %s How can I help with your %q idea today?",
		a.Name, a.Description, ideaTitle)
}
