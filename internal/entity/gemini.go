package entity

// Wire types for the generative-language endpoint. The request carries
// an ordered list of contents (each a list of text parts, optionally
// tagged with a role) plus the generation parameters; the response is a
// list of candidates of which only the first is consumed.

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type GeminiGenerateRequest struct {
	Contents         []GeminiContent        `json:"contents"`
	GenerationConfig GeminiGenerationConfig `json:"generationConfig"`
}

type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type GeminiGenerateResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

// GeminiErrorBody is the error envelope the endpoint returns on non-2xx
// statuses.
type GeminiErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatPrompt is everything needed to shape one persona-conditioned
// conversational request.
type ChatPrompt struct {
	IdeaTitle       string
	IdeaDescription string
	Agent           Agent
	History         []ChatTurn
	Message         string
}
