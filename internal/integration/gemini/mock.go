package gemini

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector returns canned generations so the service can run
// without a credential or network access.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) GenerateAnalysis(ctx context.Context, title, description string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating analysis", zap.String("idea_title", title))

	return fmt.Sprintf(`Here is the requested analysis:
{
  "problemAnalysis": "%[1]s addresses a significant pain point in the market. The problem is well-defined and affects a large number of potential customers.",
  "targetMarket": "The primary target audience for %[1]s consists of tech-savvy professionals aged 25-45. This demographic represents a large potential user base.",
  "businessModel": "A SaaS subscription model is recommended for %[1]s, with tiered pricing based on feature access and usage volume.",
  "legalConsiderations": "%[1]s will need to address data privacy regulations including GDPR and CCPA. Intellectual property protection should be explored early.",
  "growthStrategy": "A product-led growth strategy is optimal for %[1]s, focusing on viral features and exceptional user experience to drive organic adoption.",
  "competitorAnalysis": "The competitive landscape for %[1]s is fragmented, with no dominant player. This presents an opportunity to establish market leadership.",
  "fundingRequirements": "%[1]s requires approximately $750K-$1.2M in seed funding to reach MVP and initial market validation."
}`, title), nil
}

func (m *MockConnector) GenerateTitle(ctx context.Context, description string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating title suggestion")
	return "Mocked Startup Title", nil
}

func (m *MockConnector) GenerateChat(ctx context.Context, prompt *entity.ChatPrompt) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating chat reply", zap.String("agent_id", string(prompt.Agent.ID)))

	return fmt.Sprintf("That's a great question about %q. As your %s I would recommend focusing on this area first, then validating with real customers.",
		prompt.IdeaTitle, prompt.Agent.Name), nil
}
