package entity

type CreateIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type IdeaResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type UpdateDraftRequest struct {
	Description string `json:"description"`
}

type DraftResponse struct {
	Description    string `json:"description"`
	SuggestedTitle string `json:"suggested_title,omitempty"`
}

type DashboardResponse struct {
	IdeaCount     int           `json:"idea_count"`
	AnalysisCount int           `json:"analysis_count"`
	LatestIdea    *IdeaResponse `json:"latest_idea,omitempty"`
}

type SetCredentialRequest struct {
	APIKey string `json:"api_key"`
}

type CredentialStatusResponse struct {
	Configured bool `json:"configured"`
}
