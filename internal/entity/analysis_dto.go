package entity

type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatDOCX     ReportFormat = "docx"
	FormatPDF      ReportFormat = "pdf"
)

func (f ReportFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type AnalysisResponse struct {
	ID                  string `json:"id"`
	IdeaID              string `json:"idea_id"`
	ProblemAnalysis     string `json:"problem_analysis"`
	TargetMarket        string `json:"target_market"`
	BusinessModel       string `json:"business_model"`
	LegalConsiderations string `json:"legal_considerations"`
	GrowthStrategy      string `json:"growth_strategy"`
	CompetitorAnalysis  string `json:"competitor_analysis"`
	FundingRequirements string `json:"funding_requirements"`
	CreatedAt           string `json:"created_at"`
}

// GenerateAnalysisResponse wraps a freshly generated analysis with the
// parse-quality tags so the caller can flag degraded results.
type GenerateAnalysisResponse struct {
	Analysis      *AnalysisResponse `json:"analysis"`
	Tier          string            `json:"tier"`
	LowConfidence bool              `json:"low_confidence"`
}
