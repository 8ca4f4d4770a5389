package analysis

import (
	"time"

	"github.com/ideasage/backend/internal/entity"
)

// toAnalysisResponse converts Analysis entity to AnalysisResponse DTO
func toAnalysisResponse(a *entity.Analysis) *entity.AnalysisResponse {
	return &entity.AnalysisResponse{
		ID:                  a.ID,
		IdeaID:              a.IdeaID,
		ProblemAnalysis:     a.ProblemAnalysis,
		TargetMarket:        a.TargetMarket,
		BusinessModel:       a.BusinessModel,
		LegalConsiderations: a.LegalConsiderations,
		GrowthStrategy:      a.GrowthStrategy,
		CompetitorAnalysis:  a.CompetitorAnalysis,
		FundingRequirements: a.FundingRequirements,
		CreatedAt:           a.CreatedAt.Format(time.RFC3339),
	}
}

func toGenerateResponse(a *entity.Analysis, e *entity.Extraction) *entity.GenerateAnalysisResponse {
	return &entity.GenerateAnalysisResponse{
		Analysis:      toAnalysisResponse(a),
		Tier:          string(e.Tier),
		LowConfidence: e.LowConfidence(),
	}
}
