package gemini

import (
	"fmt"
	"strings"

	"github.com/ideasage/backend/internal/entity"
)

// analysisPreamble instructs the model to return the seven assessment
// sections as a JSON object keyed by the exact field names. The model
// frequently wraps or decorates the JSON anyway, which is why the
// caller runs a two-tier extraction over the raw text.
const analysisPreamble = `
You are an expert startup analyst. Provide a comprehensive, insightful analysis of the following startup idea.
Your response should include these sections:
1. Problem Analysis: Identify the core problem and its significance
2. Target Market: Define the ideal customer segments with specifics
3. Business Model: Suggest viable revenue streams and pricing models
4. Legal Considerations: Highlight key regulatory concerns
5. Growth Strategy: Outline practical steps for scaling
6. Competitor Analysis: Identify main competitors and differentiation points
7. Funding Requirements: Estimate initial funding needs and allocation

Format your response as a clean JSON object with these exact keys: problemAnalysis, targetMarket, businessModel, legalConsiderations, growthStrategy, competitorAnalysis, fundingRequirements.
Each value should be 2-3 paragraphs of insightful analysis. Be specific, practical, and actionable.
`

const titlePreamble = "Generate a short, catchy title (5 words max) for this startup idea. Return just the title, nothing else:"

func analysisUserPrompt(title, description string) string {
	return fmt.Sprintf("Idea Title: %s\nIdea Description: %s", title, description)
}

func chatSystemPrompt(prompt *entity.ChatPrompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are acting as a %s for a startup called %q.\n\n", prompt.Agent.Name, prompt.IdeaTitle)
	fmt.Fprintf(&b, "Idea Description: %s\n\n", prompt.IdeaDescription)
	b.WriteString(prompt.Agent.Persona)
	b.WriteString("\n\nKeep your responses helpful, concise (1-3 paragraphs), and actionable.\n")
	b.WriteString("Provide specific examples or next steps when possible.\n")
	b.WriteString("Don't use markdown formatting in your responses.")
	return b.String()
}
