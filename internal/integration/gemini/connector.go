package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/config"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/integration/common"
	pkgretry "github.com/ideasage/backend/internal/pkg/retry"
	pkghttp "github.com/ideasage/backend/pkg/http"
	"go.uber.org/zap"
)

// Generation parameters shared by every request; only the output token
// limit varies per operation.
const (
	genTemperature = 0.7
	genTopK        = 40
	genTopP        = 0.95

	analysisMaxTokens = 4096
	chatMaxTokens     = 2048
	titleMaxTokens    = 20
)

// CredentialSource yields the API credential for outbound requests.
type CredentialSource interface {
	Get(ctx context.Context) (string, error)
}

// Connector shapes and sends requests to the generative-language
// endpoint. The credential is resolved per request from the source,
// attached as a query parameter by the transport, and its absence is
// checked before any request is built.
type Connector struct {
	cfg         config.GeminiConnectorConfig
	connector   *pkghttp.Connector
	credentials CredentialSource
	logger      *zap.Logger
}

func NewConnector(
	cfg config.GeminiConnectorConfig,
	credentials CredentialSource,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		cfg:         cfg,
		connector:   common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKeyQuery("key", credentials.Get)),
		credentials: credentials,
		logger:      logger,
	}
}

// GenerateAnalysis requests the seven-section assessment and returns
// the raw response text for the caller's two-tier extraction.
func (c *Connector) GenerateAnalysis(ctx context.Context, title, description string) (string, error) {
	ctxzap.Info(ctx, "generating analysis", zap.String("idea_title", title))

	req := &entity.GeminiGenerateRequest{
		Contents: []entity.GeminiContent{{
			Parts: []entity.GeminiPart{
				{Text: analysisPreamble},
				{Text: analysisUserPrompt(title, description)},
			},
		}},
		GenerationConfig: generationConfig(analysisMaxTokens),
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate analysis: %w", err)
	}

	ctxzap.Info(ctx, "analysis generated", zap.Int("response_length", len(text)))
	return text, nil
}

// GenerateTitle requests a concise title for a description. The result
// is trimmed and stripped of surrounding quote characters. Errors
// propagate; the caller owns the fallback title.
func (c *Connector) GenerateTitle(ctx context.Context, description string) (string, error) {
	ctxzap.Info(ctx, "generating title suggestion")

	req := &entity.GeminiGenerateRequest{
		Contents: []entity.GeminiContent{{
			Parts: []entity.GeminiPart{
				{Text: titlePreamble},
				{Text: description},
			},
		}},
		GenerationConfig: generationConfig(titleMaxTokens),
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate title: %w", err)
	}

	title := stripQuotes(strings.TrimSpace(text))
	ctxzap.Info(ctx, "title generated", zap.String("title", title))
	return title, nil
}

// GenerateChat sends the persona-conditioned conversation: a
// system-role turn carrying persona and idea context, the history as
// alternating user/model turns, then the new user turn.
func (c *Connector) GenerateChat(ctx context.Context, prompt *entity.ChatPrompt) (string, error) {
	ctxzap.Info(ctx, "generating chat reply",
		zap.String("agent_id", string(prompt.Agent.ID)),
		zap.Int("history_length", len(prompt.History)),
	)

	contents := make([]entity.GeminiContent, 0, len(prompt.History)+2)
	contents = append(contents, entity.GeminiContent{
		Role:  "system",
		Parts: []entity.GeminiPart{{Text: chatSystemPrompt(prompt)}},
	})
	for _, turn := range prompt.History {
		role := "model"
		if turn.IsUser {
			role = "user"
		}
		contents = append(contents, entity.GeminiContent{
			Role:  role,
			Parts: []entity.GeminiPart{{Text: turn.Content}},
		})
	}
	contents = append(contents, entity.GeminiContent{
		Role:  "user",
		Parts: []entity.GeminiPart{{Text: prompt.Message}},
	})

	req := &entity.GeminiGenerateRequest{
		Contents:         contents,
		GenerationConfig: generationConfig(chatMaxTokens),
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate chat reply: %w", err)
	}
	return text, nil
}

// generate performs one call and returns the first candidate's text.
// The credential is checked up front so absence never reaches the
// network; transient transport and 5xx failures are retried.
func (c *Connector) generate(ctx context.Context, req *entity.GeminiGenerateRequest) (string, error) {
	if _, err := c.credentials.Get(ctx); err != nil {
		return "", err
	}

	var resp entity.GeminiGenerateResponse
	err := pkgretry.Do(ctx, &c.cfg.Retry, retryableError, func() error {
		resp = entity.GeminiGenerateResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, c.cfg.GenerateEndpoint, req, &resp)
	})
	if err != nil {
		return "", decorateEndpointError(err)
	}

	if len(resp.Candidates) == 0 {
		return "", entity.ErrEmptyCandidates
	}

	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", entity.ErrEmptyCandidates
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

func generationConfig(maxTokens int) entity.GeminiGenerationConfig {
	return entity.GeminiGenerationConfig{
		Temperature:     genTemperature,
		TopK:            genTopK,
		TopP:            genTopP,
		MaxOutputTokens: maxTokens,
	}
}

// retryableError retries transport failures and server-side statuses;
// client errors (bad key, malformed request) fail immediately.
func retryableError(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return !errors.Is(err, entity.ErrCredentialMissing)
	}
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return false
}

// decorateEndpointError surfaces the endpoint's own error message when
// the failure body carries one.
func decorateEndpointError(err error) error {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		var body entity.GeminiErrorBody
		if jsonErr := json.Unmarshal([]byte(httpErr.Body), &body); jsonErr == nil && body.Error.Message != "" {
			return fmt.Errorf("endpoint rejected request (HTTP %d): %s", httpErr.StatusCode, body.Error.Message)
		}
	}
	return err
}

// stripQuotes removes one layer of surrounding quote characters,
// straight or curly, that models like to wrap titles in.
func stripQuotes(s string) string {
	return strings.Trim(s, `"'`+"“”‘’")
}
